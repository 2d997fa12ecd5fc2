package notify

import "fmt"

// Bilingual (Korean/English) message catalogue for the user-facing
// surfaces. Conversion semantics never depend on these.

// AppTitle is the message box title for neutral messages
const AppTitle = "Document to Long PNG"

// ErrorTitle is the message box title for failures
const ErrorTitle = "오류/Error"

// SuccessTitle is the message box title for completed conversions
const SuccessTitle = "성공/Success"

// UsageMessage explains the drag-and-drop usage when no input was given
const UsageMessage = "사용법: PDF 또는 .mvle 파일을 드래그 앤 드롭 하세요.\n\n" +
	"Usage: Drag and drop a PDF or .mvle file onto this executable."

// SuccessMessage reports the finished conversion and its output file
func SuccessMessage(outputPath string, pages, width, height int) string {
	return fmt.Sprintf("변환이 완료되었습니다!\nFile saved: %s\n(%d pages, %dx%d)",
		outputPath, pages, width, height)
}

// UnsupportedMessage reports an input extension the tool cannot convert
func UnsupportedMessage(ext string) string {
	return fmt.Sprintf("지원하지 않는 파일 형식입니다: %s\nSupported: .pdf, .mvle", ext)
}

// FailureMessage reports a failed conversion
func FailureMessage(err error) string {
	return fmt.Sprintf("파일 변환에 실패했습니다.\nConversion failed: %v", err)
}
