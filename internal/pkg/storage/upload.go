package storage

import (
	"bufio"
	"errors"
	"io"
	"net/http"
	"path"
	"strings"
)

var (
	ErrTooLarge          = errors.New("storage: upload exceeds size limit")
	ErrUnsupportedFormat = errors.New("storage: unsupported file format")
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// SniffImage peeks at the head of r and returns the detected image content
// type, its file extension and a reader replaying the whole stream.
func SniffImage(r io.Reader) (contentType, ext string, body io.Reader, err error) {
	br := bufio.NewReaderSize(r, 512)
	head, err := br.Peek(512)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return "", "", nil, err
	}

	ct := http.DetectContentType(head)
	ext, ok := imageExtensions[ct]
	if !ok {
		return "", "", nil, ErrUnsupportedFormat
	}
	return ct, ext, br, nil
}

// LimitReader fails with ErrTooLarge once more than limit bytes are read.
func LimitReader(r io.Reader, limit int64) io.Reader {
	return &limitedReader{r: r, left: limit}
}

type limitedReader struct {
	r    io.Reader
	left int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.left < 0 {
		return 0, ErrTooLarge
	}
	if int64(len(p)) > l.left+1 {
		p = p[:l.left+1]
	}
	n, err := l.r.Read(p)
	l.left -= int64(n)
	if l.left < 0 {
		return n, ErrTooLarge
	}
	return n, err
}

// ObjectKey builds "<prefix>/<id><ext>" with a clean path.
func ObjectKey(prefix, id, ext string) string {
	return strings.TrimPrefix(path.Join(prefix, id+ext), "/")
}
