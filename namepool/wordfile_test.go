package namepool

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func Test_LoadWordList(t *testing.T) {
	Convey("LoadWordList()", t, func() {
		dir := t.TempDir()

		Convey("reads one word per line, skipping comments and blanks", func() {
			path := filepath.Join(dir, "words.txt")
			err := os.WriteFile(path, []byte("# colors\nred\n\n  green extra\nblue\nred\nviolet"), 0644)
			So(err, ShouldBeNil)

			list, err := LoadWordList(path)
			So(err, ShouldBeNil)
			So(list.Words, ShouldResemble, []string{"red", "green", "blue", "violet"})
			So(list.Cardinality(2), ShouldEqual, 16)
		})

		Convey("errors when the file doesn't exist", func() {
			list, err := LoadWordList(filepath.Join(dir, "nope.txt"))
			So(list, ShouldBeNil)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "failed to open word file")
		})

		Convey("errors when the file has no words", func() {
			path := filepath.Join(dir, "empty.txt")
			err := os.WriteFile(path, []byte("# nothing here\n\n"), 0644)
			So(err, ShouldBeNil)

			_, err = LoadWordList(path)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "contains no words")
		})
	})
}
