package ffmpegsource

import (
	"fmt"
	"io"
	"os"

	"github.com/h2non/filetype"
)

// headerSize is the number of leading bytes the type matchers inspect.
const headerSize = 262

// sniff rejects files whose magic bytes identify them as something other
// than a media container. Unrecognized headers pass; ffprobe decides.
func sniff(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	head := make([]byte, headerSize)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return err
	}
	head = head[:n]

	switch {
	case filetype.IsImage(head),
		filetype.IsArchive(head),
		filetype.IsDocument(head),
		filetype.IsFont(head):
		kind, _ := filetype.Match(head)
		return fmt.Errorf("%w: %s (%s)", ErrNotVideo, kind.MIME.Value, kind.Extension)
	}
	return nil
}
