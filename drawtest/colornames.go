package drawtest

import (
	"fmt"

	"github.com/rjkroege/collist/draw"
)

func NiceColourName(num draw.Color) string {
	lookuptable := make(map[draw.Color]string)

	lookuptable[draw.Black] = "Black"
	lookuptable[draw.Medblue] = "Medblue"
	lookuptable[draw.Notacolor] = "Notacolor"
	lookuptable[draw.Palebluegreen] = "Palebluegreen"
	lookuptable[draw.Paleyellow] = "Paleyellow"
	lookuptable[draw.White] = "White"

	if s, ok := lookuptable[num]; ok {
		return s
	}
	return fmt.Sprintf("color(%x)", uint32(num))
}
