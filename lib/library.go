package main

/*
#include <stdbool.h>
#include <stdlib.h>
*/
import "C"
import (
	"unsafe"

	"github.com/wbrown/alpha_abbrev"
)

//export isValidAbbreviation
// isValidAbbreviation accepts a word and a candidate abbreviation as C
// strings, and returns whether the abbreviation encodes the word.
func isValidAbbreviation(word *C.char, abbr *C.char) C.bool {
	return C.bool(alpha_abbrev.IsValidAbbreviation(C.GoString(word),
		C.GoString(abbr)))
}

//export generateAbbreviation
// generateAbbreviation accepts a word as a C string, and returns a malloc'ed
// C string containing its abbreviation, or NULL if none could be generated.
// The caller owns the returned string.
func generateAbbreviation(word *C.char) *C.char {
	abbr, ok := alpha_abbrev.GenerateAbbreviation(C.GoString(word))
	if !ok {
		return nil
	}
	return C.CString(abbr)
}

//export createInitialism
// createInitialism accepts a phrase as a C string, and returns a malloc'ed C
// string containing its initialism. The caller owns the returned string.
func createInitialism(text *C.char) *C.char {
	return C.CString(alpha_abbrev.CreateInitialism(C.GoString(text)))
}

// The wrappers below simulate C calls from golang, and are here rather than
// in the test package as the test package is incompatible with CGo.

func wrapIsValidAbbreviation(word string, abbr string) bool {
	wordC, abbrC := C.CString(word), C.CString(abbr)
	defer C.free(unsafe.Pointer(wordC))
	defer C.free(unsafe.Pointer(abbrC))
	return bool(isValidAbbreviation(wordC, abbrC))
}

func wrapGenerateAbbreviation(word string) (string, bool) {
	wordC := C.CString(word)
	defer C.free(unsafe.Pointer(wordC))
	abbrC := generateAbbreviation(wordC)
	if abbrC == nil {
		return "", false
	}
	defer C.free(unsafe.Pointer(abbrC))
	return C.GoString(abbrC), true
}

func wrapCreateInitialism(text string) string {
	textC := C.CString(text)
	defer C.free(unsafe.Pointer(textC))
	initialismC := createInitialism(textC)
	defer C.free(unsafe.Pointer(initialismC))
	return C.GoString(initialismC)
}

func main() {}
