package namepool

import (
	"fmt"
	"strings"

	"github.com/nxadm/tail"
	log "github.com/sirupsen/logrus"
)

// LoadWordList reads a word file into a WordList corpus. The file has one
// word per line; blank lines and lines starting with '#' are skipped, and
// only the first field of a line is used.
func LoadWordList(path string) (*WordList, error) {
	tailed, err := tail.TailFile(path, tail.Config{
		MustExist: true, Follow: false, Logger: tail.DiscardingLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open word file %s: %w", path, err)
	}
	defer tailed.Cleanup()

	var words []string
	for line := range tailed.Lines {
		if line.Err != nil {
			_ = tailed.Stop()
			return nil, fmt.Errorf("failed to read word file %s: %w", path, line.Err)
		}

		fields := strings.Fields(line.Text)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		words = append(words, fields[0])
	}

	// Lines is closed just before the tail finishes, so wait on it for the result
	if err := tailed.Wait(); err != nil {
		return nil, fmt.Errorf("failed to read word file %s: %w", path, err)
	}

	list := NewWordList(words)
	if len(list.Words) == 0 {
		return nil, fmt.Errorf("word file %s contains no words", path)
	}

	log.Infof("Loaded %d words from %s", len(list.Words), path)

	return list, nil
}
