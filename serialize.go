package main

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"io"
)

// Serialize writes data in binary form. data must have a fixed size (numbers,
// bools, arrays and structs of those), see encoding/binary.
func Serialize(w io.Writer, data any) {
	Check(binary.Write(w, binary.LittleEndian, data))
}

func Deserialize(r io.Reader, data any) {
	Check(binary.Read(r, binary.LittleEndian, data))
}

// SerializeSlice writes the length of the slice and then its elements.
func SerializeSlice[T any](w io.Writer, s []T) {
	Serialize(w, int64(len(s)))
	Serialize(w, s)
}

func DeserializeSlice[T any](r io.Reader, s *[]T) {
	var n int64
	Deserialize(r, &n)
	*s = make([]T, n)
	Deserialize(r, *s)
}

func SerializeString(w io.Writer, s string) {
	SerializeSlice(w, []byte(s))
}

func DeserializeString(r io.Reader, s *string) {
	var b []byte
	DeserializeSlice(r, &b)
	*s = string(b)
}

func SerializeStrings(w io.Writer, s []string) {
	Serialize(w, int64(len(s)))
	for _, str := range s {
		SerializeString(w, str)
	}
}

func DeserializeStrings(r io.Reader, s *[]string) {
	var n int64
	Deserialize(r, &n)
	*s = make([]string, n)
	for i := range *s {
		DeserializeString(r, &(*s)[i])
	}
}

func Zip(data []byte) []byte {
	buf := new(bytes.Buffer)
	w := zlib.NewWriter(buf)
	_, err := w.Write(data)
	Check(err)
	Check(w.Close())
	return buf.Bytes()
}

func Unzip(data []byte) []byte {
	r, err := zlib.NewReader(bytes.NewReader(data))
	Check(err)
	if err != nil {
		return nil
	}
	defer func(r io.ReadCloser) { Check(r.Close()) }(r)
	unzipped, err := io.ReadAll(r)
	Check(err)
	return unzipped
}
