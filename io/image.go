// Package io reads and writes wvm program images.
//
// An image is a flat sequence of 16-bit words with no header. The byte
// order is chosen by the caller; little endian is the default used by the
// command line tools. A trailing odd byte is ignored.
package io

import (
	"encoding/binary"
	"io"
	"io/fs"

	"github.com/ezrec/wvm/cpu"
)

const (
	WORD_BYTES = 2 // Bytes per image word.
)

// DefaultByteOrder is the image byte order used when none is given.
var DefaultByteOrder binary.ByteOrder = binary.LittleEndian

// ReadImage decodes all of input into words.
func ReadImage(input io.Reader, order binary.ByteOrder) (words []cpu.Word, err error) {
	if order == nil {
		order = DefaultByteOrder
	}

	// One word past a full memory is enough to reject the image.
	limit := int64(cpu.MEMORY_SIZE+1) * WORD_BYTES
	data, err := io.ReadAll(io.LimitReader(input, limit))
	if err != nil {
		return
	}

	count := len(data) / WORD_BYTES
	if count > cpu.MEMORY_SIZE {
		err = ErrImageTooLarge
		return
	}

	words = make([]cpu.Word, count)
	for n := range count {
		words[n] = cpu.Word(order.Uint16(data[n*WORD_BYTES:]))
	}

	return
}

// ReadImageFile reads the named image from fsys.
func ReadImageFile(fsys fs.FS, name string, order binary.ByteOrder) (words []cpu.Word, err error) {
	defer func() {
		if err != nil {
			err = &ErrImage{Name: name, Err: err}
		}
	}()

	inf, err := fsys.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	words, err = ReadImage(inf, order)
	return
}

// WriteImage encodes words to output.
func WriteImage(output io.Writer, words []cpu.Word, order binary.ByteOrder) (err error) {
	if order == nil {
		order = DefaultByteOrder
	}

	data := make([]byte, len(words)*WORD_BYTES)
	for n, word := range words {
		order.PutUint16(data[n*WORD_BYTES:], uint16(word))
	}

	_, err = output.Write(data)
	return
}

// WriteImageFile writes words to the named image in fsys.
func WriteImageFile(fsys CreateFS, name string, words []cpu.Word, order binary.ByteOrder) (err error) {
	defer func() {
		if err != nil {
			err = &ErrImage{Name: name, Err: err}
		}
	}()

	ouf, err := fsys.Create(name)
	if err != nil {
		return
	}

	err = WriteImage(ouf, words, order)
	if err != nil {
		ouf.Close()
		return
	}

	err = ouf.Close()
	return
}
