package notation

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

type Tag struct {
	Name  string
	Value string
}

// Transcript is a game record: a block of [Name "value"] tags
// followed by the moves.
type Transcript struct {
	Tags  []Tag
	Moves []Move
}

func ParseTranscript(r io.Reader) (*Transcript, error) {
	buf := bufio.NewReader(r)
	var t Transcript
	if err := readTags(buf, &t); err != nil && err != io.EOF {
		return nil, err
	}
	rest, err := io.ReadAll(buf)
	if err != nil {
		return nil, err
	}
	t.Moves, err = ParseMoves(stripNumbers(string(rest)))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func ParseFile(path string) (*Transcript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseTranscript(f)
}

// stripNumbers drops move numbers such as "12." from the move text.
func stripNumbers(text string) string {
	fields := strings.FieldsFunc(text, unicode.IsSpace)
	out := fields[:0]
	for _, f := range fields {
		if strings.HasSuffix(f, ".") && strings.Trim(f, "0123456789.") == "" {
			continue
		}
		out = append(out, f)
	}
	return strings.Join(out, " ")
}

func readTags(r *bufio.Reader, t *Transcript) error {
	for {
		if e := skipWS(r); e != nil {
			return e
		}
		c, e := r.ReadByte()
		if e != nil {
			return e
		}
		if c != '[' {
			return r.UnreadByte()
		}
		line, e := r.ReadString(']')
		if e != nil {
			return e
		}
		line = line[:len(line)-1]
		bits := strings.SplitN(line, " ", 2)
		if len(bits) != 2 {
			return errors.New("bad tag")
		}
		t.Tags = append(t.Tags, Tag{
			Name:  bits[0],
			Value: strings.Trim(bits[1], "\""),
		})
	}
}

func skipWS(r *bufio.Reader) error {
	for {
		c, e := r.ReadByte()
		if e != nil {
			return e
		}
		if !unicode.IsSpace(rune(c)) {
			return r.UnreadByte()
		}
	}
}

func (t *Transcript) FindTag(name string) string {
	for _, tag := range t.Tags {
		if tag.Name == name {
			return tag.Value
		}
	}
	return ""
}

// Render writes the tags, then the moves numbered in pairs.
func (t *Transcript) Render() string {
	var out bytes.Buffer
	for _, tag := range t.Tags {
		fmt.Fprintf(&out, "[%s \"%s\"]\n",
			tag.Name, strings.Replace(tag.Value, "\"", "", -1),
		)
	}
	for i, m := range t.Moves {
		if i%2 == 0 {
			fmt.Fprintf(&out, "\n%d.", i/2+1)
		}
		fmt.Fprintf(&out, " %s", m)
	}
	out.WriteString("\n")
	return out.String()
}
