package printer

import (
	"bytes"
	"fmt"
	"strings"
)

// ESC/POS command bytes.
var (
	cmdInit        = []byte{0x1B, 0x40} // Initialize printer
	cmdAlignLeft   = []byte{0x1B, 0x61, 0x00}
	cmdAlignCenter = []byte{0x1B, 0x61, 0x01}
	cmdAlignRight  = []byte{0x1B, 0x61, 0x02}
	cmdBoldOn      = []byte{0x1B, 0x45, 0x01}
	cmdBoldOff     = []byte{0x1B, 0x45, 0x00}
	cmdFontNormal  = []byte{0x1D, 0x21, 0x00}
	cmdFontDouble  = []byte{0x1D, 0x21, 0x11} // Double width and height
	cmdPartialCut  = []byte{0x1D, 0x56, 0x01}
)

// Alignment for receipt text.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// FontSize for receipt text.
type FontSize int

const (
	FontNormal FontSize = iota
	FontDouble
)

// Document builds an ESC/POS byte stream for a receipt.
type Document struct {
	buf   bytes.Buffer
	width int // characters per line at normal font
}

// NewDocument creates a receipt document for the given paper width
// in characters (32 for 58mm paper, 48 for 80mm).
func NewDocument(width int) *Document {
	d := &Document{width: width}
	d.buf.Write(cmdInit)
	return d
}

// Width returns the character width of the paper.
func (d *Document) Width() int {
	return d.width
}

func (d *Document) SetAlign(a Alignment) *Document {
	switch a {
	case AlignCenter:
		d.buf.Write(cmdAlignCenter)
	case AlignRight:
		d.buf.Write(cmdAlignRight)
	default:
		d.buf.Write(cmdAlignLeft)
	}
	return d
}

func (d *Document) SetBold(on bool) *Document {
	if on {
		d.buf.Write(cmdBoldOn)
	} else {
		d.buf.Write(cmdBoldOff)
	}
	return d
}

func (d *Document) SetFontSize(s FontSize) *Document {
	if s == FontDouble {
		d.buf.Write(cmdFontDouble)
	} else {
		d.buf.Write(cmdFontNormal)
	}
	return d
}

// Text writes a line of text followed by a line feed.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte('\n')
	return d
}

// Textf writes a formatted line of text followed by a line feed.
func (d *Document) Textf(format string, args ...interface{}) *Document {
	return d.Text(fmt.Sprintf(format, args...))
}

// Separator writes a full-width line of dashes.
func (d *Document) Separator() *Document {
	return d.Text(strings.Repeat("-", d.width))
}

// KeyValue writes a left-aligned key and right-aligned value on one line.
// If the pair does not fit, the value is printed on its own line.
func (d *Document) KeyValue(key, value string) *Document {
	pad := d.width - len(key) - len(value)
	if pad < 1 {
		d.Text(key)
		d.buf.WriteString(strings.Repeat(" ", maxInt(0, d.width-len(value))))
		d.buf.WriteString(value)
		d.buf.WriteByte('\n')
		return d
	}
	d.buf.WriteString(key)
	d.buf.WriteString(strings.Repeat(" ", pad))
	d.buf.WriteString(value)
	d.buf.WriteByte('\n')
	return d
}

// ItemLine writes an item name with quantity and amount, wrapping long
// names onto their own line.
func (d *Document) ItemLine(name string, qty int, amount string) *Document {
	right := fmt.Sprintf("x%d %s", qty, amount)
	if len(name)+len(right)+1 > d.width {
		d.Text(name)
		d.SetAlign(AlignRight)
		d.Text(right)
		d.SetAlign(AlignLeft)
		return d
	}
	return d.KeyValue(name, right)
}

// FeedLines advances the paper by n lines.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte('\n')
	}
	return d
}

// PartialCut cuts the paper, leaving a small tab.
func (d *Document) PartialCut() *Document {
	d.buf.Write(cmdPartialCut)
	return d
}

// Bytes returns the assembled ESC/POS byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
