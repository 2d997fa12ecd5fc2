package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// Config contains all of the converter settings
type Config struct {
	Zoom            float64 // render scale relative to native page resolution
	Renderer        string  // "fitz" or "pdfium"
	ResizeWidth     int     // optional post-composite resize, 0 disables
	SharpenSigma    float64 // optional post-composite sharpen, 0 disables
	IngressPath     string  // watch mode: folder polled for new documents
	OutputPath      string  // watch mode: folder converted PNGs are written to
	IngressInterval int     // watch mode: polling interval in minutes
	EpisodeWidth    int     // final pixel width of rendered episode images
	FontPaths       FontPaths
}

// FontPaths locates the typefaces used for episode rendering. Korean text
// uses the Ko faces, CJK ideographs fall back to the CJK faces.
type FontPaths struct {
	Ko      string
	KoBold  string
	CJK     string
	CJKBold string
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

// getEnvFloat gets a float environment variable with a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatVal, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return floatVal
}

// Setup loads configuration and returns Config and Logger
func Setup() (Config, *slog.Logger) {
	configLive := Config{}

	// Load .env file (silently ignore if doesn't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("config.env")

	logger := setupLogging()
	Logger = logger

	// Load configuration from environment variables with defaults

	// Rendering configuration
	configLive.Zoom = getEnvFloat("ZOOM", 2.0)
	if configLive.Zoom <= 0 {
		logger.Warn("Invalid zoom factor, falling back to 2.0", "zoom", configLive.Zoom)
		configLive.Zoom = 2.0
	}
	configLive.Renderer = getEnv("RENDERER", "fitz")
	configLive.ResizeWidth = getEnvInt("RESIZE_WIDTH", 0)
	configLive.SharpenSigma = getEnvFloat("SHARPEN_SIGMA", 0)

	// Watch mode configuration
	ingressDir := filepath.ToSlash(getEnv("INGRESS_PATH", "ingress"))
	ingressDirAbs, err := filepath.Abs(ingressDir)
	if err != nil {
		logger.Error("Failed creating absolute path for ingress directory", "error", err)
	}
	configLive.IngressPath = ingressDirAbs

	outputDir := filepath.ToSlash(getEnv("OUTPUT_PATH", "converted"))
	outputDirAbs, err := filepath.Abs(outputDir)
	if err != nil {
		logger.Error("Failed creating absolute path for output directory", "error", err)
	}
	configLive.OutputPath = outputDirAbs

	configLive.IngressInterval = getEnvInt("INGRESS_INTERVAL", 10)

	// Episode rendering configuration
	configLive.EpisodeWidth = getEnvInt("EPISODE_WIDTH", 1200)
	configLive.FontPaths = loadFontPaths()

	logger.Info("Configuration loaded",
		"zoom", configLive.Zoom,
		"renderer", configLive.Renderer)

	return configLive, logger
}

// loadFontPaths resolves the episode fonts, preferring explicit env vars and
// falling back to the usual system locations per platform.
func loadFontPaths() FontPaths {
	defaults := platformFontDefaults()
	return FontPaths{
		Ko:      getEnv("FONT_KO", defaults.Ko),
		KoBold:  getEnv("FONT_KO_BOLD", defaults.KoBold),
		CJK:     getEnv("FONT_CJK", defaults.CJK),
		CJKBold: getEnv("FONT_CJK_BOLD", defaults.CJKBold),
	}
}

func platformFontDefaults() FontPaths {
	switch runtime.GOOS {
	case "windows":
		// Malgun Gothic for Korean, Microsoft YaHei for the Chinese fallback
		return FontPaths{
			Ko:      "C:/Windows/Fonts/malgun.ttf",
			KoBold:  "C:/Windows/Fonts/malgunbd.ttf",
			CJK:     "C:/Windows/Fonts/msyh.ttc",
			CJKBold: "C:/Windows/Fonts/msyhbd.ttc",
		}
	case "darwin":
		return FontPaths{
			Ko:      "/System/Library/Fonts/AppleSDGothicNeo.ttc",
			KoBold:  "/System/Library/Fonts/AppleSDGothicNeo.ttc",
			CJK:     "/System/Library/Fonts/PingFang.ttc",
			CJKBold: "/System/Library/Fonts/PingFang.ttc",
		}
	default:
		return FontPaths{
			Ko:      "/usr/share/fonts/truetype/nanum/NanumGothic.ttf",
			KoBold:  "/usr/share/fonts/truetype/nanum/NanumGothicBold.ttf",
			CJK:     "/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
			CJKBold: "/usr/share/fonts/opentype/noto/NotoSansCJK-Bold.ttc",
		}
	}
}

// setupLogging configures the application logger
func setupLogging() *slog.Logger {
	logLevel := getEnv("LOG_LEVEL", "info")
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOptions := &slog.HandlerOptions{Level: level}

	logOutput := getEnv("LOG_OUTPUT", "stderr")
	var logWriter io.Writer

	switch logOutput {
	case "stdout":
		logWriter = os.Stdout
	case "file":
		logPath, err := filepath.Abs(filepath.ToSlash(getEnv("LOG_FILE", "longpng.log")))
		if err != nil {
			fmt.Printf("Error creating log file path: %v\n", err)
			logWriter = os.Stderr
		} else {
			logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err != nil {
				fmt.Printf("Failed to open log file: %v\n", err)
				logWriter = os.Stderr
			} else {
				logWriter = logFile
			}
		}
	default:
		logWriter = os.Stderr
	}

	handler := slog.NewTextHandler(logWriter, handlerOptions)
	return slog.New(handler)
}
