package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/CrestNiraj12/postcards/domain"
)

// EnvEditor prepares an external editor command using $EDITOR (fallback: "vi").
// It does not run the editor. Callers hand the returned *exec.Cmd to
// tea.ExecProcess so Bubble Tea releases the terminal first.
type EnvEditor struct{}

// NewEnvEditor creates an EnvEditor.
func NewEnvEditor() *EnvEditor {
	return &EnvEditor{}
}

const instructionComment = `<!--
PostCards: Edit your post below.

- The first line starting with "Title:" is the post title.
- Everything after it is the body.
- SAVE and EXIT to update (e.g., :wq in vi).
- An empty title or NO CHANGES will cancel.
-->

`

const titlePrefix = "Title:"

// Cmd writes the draft to a temp file and prepares an *exec.Cmd that opens it.
func (e *EnvEditor) Cmd(draft domain.Draft) (*exec.Cmd, string, error) {
	editorCmd := os.Getenv("EDITOR")
	if editorCmd == "" {
		editorCmd = "vi"
	}

	tmpFile, err := os.CreateTemp("", "postcards-*.md")
	if err != nil {
		return nil, "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer tmpFile.Close()

	if _, err := tmpFile.WriteString(instructionComment + formatDraft(draft)); err != nil {
		os.Remove(tmpPath)
		return nil, "", fmt.Errorf("writing to temp file: %w", err)
	}

	return exec.Command(editorCmd, tmpPath), tmpPath, nil
}

// ReadDraft parses the temp file back into a draft and removes the file.
// The media reference is not editable here and is left empty.
func (e *EnvEditor) ReadDraft(path string) (domain.Draft, error) {
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Draft{}, fmt.Errorf("reading temp file: %w", err)
	}
	return parseDraft(string(data)), nil
}

func formatDraft(d domain.Draft) string {
	return titlePrefix + " " + d.Title + "\n\n" + d.Body
}

func parseDraft(content string) domain.Draft {
	if idx := strings.Index(content, "-->"); idx != -1 {
		content = content[idx+3:]
	}

	var d domain.Draft
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, titlePrefix) {
			d.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, titlePrefix))
			d.Body = strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
			return d
		}
		// No title line: the whole text is the body.
		d.Body = strings.TrimSpace(strings.Join(lines[i:], "\n"))
		return d
	}
	return d
}
