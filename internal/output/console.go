package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/temirov/pcopy/internal/utils"
)

const (
	noColorEnvironmentVariable = "NO_COLOR"

	headerFormat        = "\n🧩 pcopy %s"
	targetFormat        = "📂 Target directory: %s"
	noTextFilesMessage  = "⚠️  No text files found in directory."
	detectedFormat      = "📄 %d text files detected (%d ignored)"
	treeIncludedMessage = "🌳 File tree included"
	writingFormat       = "✍️  Writing %s..."
	copiedFormat        = "📋 Copied content to clipboard (%s)"
	tokensFormat        = "🔢 %d tokens (%s)"
	doneFormat          = "✅ Done! File saved at %s"
)

// consoleStyles groups the lipgloss styles used for status lines.
type consoleStyles struct {
	header  lipgloss.Style
	path    lipgloss.Style
	warning lipgloss.Style
	success lipgloss.Style
}

func newConsoleStyles() consoleStyles {
	return consoleStyles{
		header:  lipgloss.NewStyle().Bold(true),
		path:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FD7FF"}),
		warning: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD75F"}),
		success: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#008700", Dark: "#87FF87"}).Bold(true),
	}
}

// Console prints the status lines of a run.
type Console struct {
	writer io.Writer
	styled bool
	styles consoleStyles
}

// NewConsole returns a Console writing to writer. Styling applies only when styled is true.
func NewConsole(writer io.Writer, styled bool) *Console {
	if writer == nil {
		writer = io.Discard
	}
	return &Console{writer: writer, styled: styled, styles: newConsoleStyles()}
}

// DetectStyling reports whether output written to file should carry styling.
func DetectStyling(file *os.File) bool {
	if os.Getenv(noColorEnvironmentVariable) != "" {
		return false
	}
	if file == nil {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

func (console *Console) paint(style lipgloss.Style, text string) string {
	if !console.styled {
		return text
	}
	return style.Render(text)
}

func (console *Console) println(text string) {
	fmt.Fprintln(console.writer, text)
}

// Header prints the banner line with the application version.
func (console *Console) Header(version string) {
	console.println(console.paint(console.styles.header, fmt.Sprintf(headerFormat, version)))
}

// TargetDirectory prints the directory being processed.
func (console *Console) TargetDirectory(path string) {
	console.println(fmt.Sprintf(targetFormat, console.paint(console.styles.path, path)))
}

// NoTextFiles reports an empty collection.
func (console *Console) NoTextFiles() {
	console.println(console.paint(console.styles.warning, noTextFilesMessage))
}

// FilesDetected prints the number of included and ignored files.
func (console *Console) FilesDetected(included int, ignored int) {
	console.println(fmt.Sprintf(detectedFormat, included, ignored))
}

// TreeIncluded notes that the document carries the file tree.
func (console *Console) TreeIncluded() {
	console.println(treeIncludedMessage)
}

// Writing announces the document being written.
func (console *Console) Writing(name string) {
	console.println(fmt.Sprintf(writingFormat, name))
}

// Copied reports a successful clipboard copy of sizeBytes bytes.
func (console *Console) Copied(sizeBytes int) {
	console.println(fmt.Sprintf(copiedFormat, utils.FormatFileSize(int64(sizeBytes))))
}

// Tokens reports the token estimate of the document.
func (console *Console) Tokens(count int, model string) {
	console.println(fmt.Sprintf(tokensFormat, count, model))
}

// Done prints the final line and a trailing blank line.
func (console *Console) Done(outputPath string) {
	console.println(console.paint(console.styles.success, fmt.Sprintf(doneFormat, outputPath)))
	console.println("")
}
