package markdown

import (
	"fmt"
	"io"
	"os"
)

// Export operates on a frozen snapshot of the plan buffer. All operations
// are pure reads; the snapshot never changes after construction.
type Export struct {
	snapshot string
}

func NewExport(buffer string) Export {
	return Export{snapshot: buffer}
}

// Raw writes the snapshot text unchanged, for copy-style consumers.
func (e Export) Raw(w io.Writer) error {
	_, err := io.WriteString(w, e.snapshot)
	return err
}

// SaveFile writes the snapshot to a text file.
func (e Export) SaveFile(path string) error {
	return os.WriteFile(path, []byte(e.snapshot), 0o644)
}

// HTMLDocument writes a standalone printable HTML document of the snapshot.
func (e Export) HTMLDocument(w io.Writer, title string) error {
	body, err := Render(e.snapshot)
	if err != nil {
		return err
	}
	if title == "" {
		title = "Trip Plan"
	}
	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n", title); err != nil {
		return err
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n</body>\n</html>\n")
	return err
}
