package convert

import (
	"fmt"
	"os"

	"github.com/h2non/filetype"
)

// maxSourceSize limits manuscripts read into memory.
const maxSourceSize = 256 << 20

// readDocument reads file and reports whether its content is DOCX container.
// Whole file is needed anyway, so detection looks at all of it.
func readDocument(path string) ([]byte, bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, false, err
	}
	if fi.Size() > maxSourceSize {
		return nil, false, fmt.Errorf("file is too large (%d bytes)", fi.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	return data, isDocx(data), nil
}

func isDocx(data []byte) bool {
	return filetype.Is(data, "docx")
}
