package ui

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"cdf-scope/cdf"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	StateSelecting = "selecting"
	StateViewing   = "viewing"
	StateFailed    = "failed"
)

type FileSelector struct {
	cwd       string
	fileNames []string
	cursor    int
	state     string
	rendered  string
	failure   error
}

func CreateFileSelector() FileSelector {
	cwd, err := os.Getwd()
	if err != nil {
		err := errors.Wrap(err, "CreateFileSelector get current working directory error")
		log.Panic(err)
	}
	return FileSelector{
		cwd:       cwd,
		fileNames: ReadDirectory(cwd),
		state:     StateSelecting,
	}
}

func ReadDirectory(path string) []string {
	entries, err := os.ReadDir(path)
	if err != nil {
		log.Fatal(err)
	}

	fileNames := lo.FilterMap(
		entries,
		func(entry os.DirEntry, _ int) (string, bool) {
			return entry.Name(), !entry.IsDir()
		},
	)
	return fileNames
}

func (s FileSelector) inspect(path string) FileSelector {
	fileBytes, err := os.ReadFile(path)
	if err == nil && !cdf.IsCDFFile(fileBytes) {
		err = errors.Errorf(`"%s" does not look like a NetCDF classic file`, path)
	}
	header := (*cdf.Header)(nil)
	if err == nil {
		header, err = cdf.Decode(fileBytes)
	}
	renderedBytes := []byte(nil)
	if err == nil {
		renderedBytes, err = json.MarshalIndent(cdf.ToOrderedMap(*header), "", "  ")
	}
	if err != nil {
		s.state = StateFailed
		s.failure = err
		return s
	}
	s.state = StateViewing
	s.rendered = string(renderedBytes)
	return s
}

func (s FileSelector) View() string {
	output := "CDF SCOPE\n\n"
	output += "Current directory: " + s.cwd + "\n\n"

	switch s.state {
	case StateSelecting:
		if len(s.fileNames) == 0 {
			output += "No files in this directory.\n"
		}
		for i, fileName := range s.fileNames {
			cursor := "  "
			if i == s.cursor {
				cursor = "> "
			}
			output += cursor + fileName + "\n"
		}
		output += "\nenter: inspect, j/k: move, q: quit\n"
	case StateViewing:
		output += s.rendered + "\n\nesc: back, q: quit\n"
	case StateFailed:
		output += "Inspection failed: " + s.failure.Error() + "\n\nesc: back, q: quit\n"
	default:
		err := fmt.Sprintf(`FileSelector.View unreachable code: invalid state "%s"`, s.state)
		log.Panic(err)
	}

	return output
}

func (s FileSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return s, tea.Quit
	case "up", "k":
		if s.state == StateSelecting && s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.state == StateSelecting && s.cursor < len(s.fileNames)-1 {
			s.cursor++
		}
	case "esc":
		s.state = StateSelecting
		s.rendered = ""
		s.failure = nil
	case "enter":
		if s.state == StateSelecting && len(s.fileNames) > 0 {
			s = s.inspect(filepath.Join(s.cwd, s.fileNames[s.cursor]))
		}
	}

	return s, nil
}

func (s FileSelector) Init() tea.Cmd {
	return nil
}
