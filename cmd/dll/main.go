// Package main provides C-compatible exports for the puz library.
// Build with: go build -buildmode=c-shared -o puz.dll
package main

/*
#include <stdlib.h>
#include <stdint.h>

// Result structure for operations that return data
typedef struct {
    char* data;
    int   data_len;
    char* error;
} PuzResult;
*/
import "C"

import (
	"bytes"
	"encoding/json"
	"unsafe"

	"github.com/logicossoftware/go-puz"
	"github.com/logicossoftware/go-puz/internal/report"
)

func main() {}

// PuzHeaderSize returns the size of the fixed header counted from the
// start of the puzzle, magic window included.
//
//export PuzHeaderSize
func PuzHeaderSize() C.int {
	return C.int(puz.HeaderSize)
}

// PuzFreeResult frees memory allocated by other Puz functions.
// Must be called to avoid memory leaks.
//
//export PuzFreeResult
func PuzFreeResult(result C.PuzResult) {
	if result.data != nil {
		C.free(unsafe.Pointer(result.data))
	}
	if result.error != nil {
		C.free(unsafe.Pointer(result.error))
	}
}

// PuzFreeString frees a C string allocated by Go.
//
//export PuzFreeString
func PuzFreeString(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

func makeResult(data []byte) C.PuzResult {
	var result C.PuzResult
	if len(data) > 0 {
		result.data = (*C.char)(C.CBytes(data))
		result.data_len = C.int(len(data))
	}
	return result
}

func makeError(err error) C.PuzResult {
	var result C.PuzResult
	result.error = C.CString(err.Error())
	return result
}

// PuzFindStart returns the offset of the puzzle within data, or -1 if the
// ACROSS&DOWN magic is not present.
//
//export PuzFindStart
func PuzFindStart(data *C.char, dataLen C.int) C.int {
	start, err := puz.FindStart(C.GoBytes(unsafe.Pointer(data), dataLen))
	if err != nil {
		return -1
	}
	return C.int(start)
}

// PuzInspect decodes a (possibly compressed) puz file and returns its
// header as JSON.
// Parameters:
//   - data: pointer to the file bytes
//   - dataLen: length of the data
//   - compression: 0=None, 1=ZIP, 2=ZSTD, 3=LZ4, 4=Brotli, 5=GZIP, 6=XZ, 0xFFFF=detect
//
// Returns PuzResult with a JSON object or error. Call PuzFreeResult when done.
//
//export PuzInspect
func PuzInspect(data *C.char, dataLen C.int, compression C.uint16_t) C.PuzResult {
	goData := C.GoBytes(unsafe.Pointer(data), dataLen)

	f, err := puz.Decode(bytes.NewReader(goData), puz.WithCompression(puz.Compression(compression)))
	if err != nil {
		return makeError(err)
	}

	jsonBytes, err := json.Marshal(report.FromFile("", f))
	if err != nil {
		return makeError(err)
	}
	return makeResult(jsonBytes)
}

// PuzBody returns the bytes following the header of an uncompressed puz
// image. Call PuzFreeResult when done.
//
//export PuzBody
func PuzBody(data *C.char, dataLen C.int) C.PuzResult {
	_, body, err := puz.ParseHeader(C.GoBytes(unsafe.Pointer(data), dataLen))
	if err != nil {
		return makeError(err)
	}
	return makeResult(body)
}

// PuzValidate checks that data holds a decodable header.
// Returns NULL on success, or an error message string on failure.
// Call PuzFreeString on the result if non-NULL.
//
//export PuzValidate
func PuzValidate(data *C.char, dataLen C.int) *C.char {
	if _, _, err := puz.ParseHeader(C.GoBytes(unsafe.Pointer(data), dataLen)); err != nil {
		return C.CString(err.Error())
	}
	return nil
}
