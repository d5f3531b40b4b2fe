package main

import (
	"fmt"

	"github.com/extism/go-pdk"
	msgpack "github.com/vmihailenco/msgpack/v5"
	"github.com/wbrown/alpha_abbrev"
)

// PairRequest carries a word and a candidate abbreviation.
type PairRequest struct {
	Word string `msgpack:"word"`
	Abbr string `msgpack:"abbr"`
}

func decodePair(input []byte) (PairRequest, error) {
	var request PairRequest
	err := msgpack.Unmarshal(input, &request)
	return request, err
}

func explainPair(input []byte) ([]byte, error) {
	request, err := decodePair(input)
	if err != nil {
		return nil, err
	}
	segments, ok := alpha_abbrev.Explain(request.Word, request.Abbr)
	if !ok {
		segments = alpha_abbrev.Segments{}
	}
	return msgpack.Marshal(&segments)
}

//go:wasmexport validate
func Validate() int32 {
	request, err := decodePair(pdk.Input())
	if err != nil {
		pdk.SetError(err)
		return 1
	}
	if alpha_abbrev.IsValidAbbreviation(request.Word, request.Abbr) {
		pdk.OutputString("true")
	} else {
		pdk.OutputString("false")
	}
	return 0
}

//go:wasmexport generate
func Generate() int32 {
	abbr, ok := alpha_abbrev.GenerateAbbreviation(pdk.InputString())
	if !ok {
		pdk.SetErrorString("no abbreviation could be generated")
		return 1
	}
	pdk.OutputString(abbr)
	return 0
}

//go:wasmexport explain
func Explain() int32 {
	output, err := explainPair(pdk.Input())
	if err != nil {
		pdk.SetError(err)
		return 1
	}
	pdk.Output(output)
	return 0
}

//go:wasmexport initialism
func Initialism() int32 {
	pdk.OutputString(alpha_abbrev.CreateInitialism(pdk.InputString()))
	return 0
}

func ExplainFull() error {
	// Mostly for debugging
	input, err := msgpack.Marshal(&PairRequest{
		Word: "internationalization",
		Abbr: "imzdn",
	})
	if err != nil {
		return err
	}
	output, err := explainPair(input)
	if err != nil {
		return err
	}
	var segments alpha_abbrev.Segments
	if err = msgpack.Unmarshal(output, &segments); err != nil {
		return err
	}
	fmt.Println(segments)
	return nil
}

func main() {
	err := ExplainFull()
	if err != nil {
		fmt.Println("Error:", err)
	}
}
