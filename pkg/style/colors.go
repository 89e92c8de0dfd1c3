package style

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// backgrounds is the fixed table of background colors recognized by Echo.
// Keys outside this table are rejected with UnsupportedColorError.
var backgrounds = map[string]termenv.ANSIColor{
	"black":   termenv.ANSIBlack,
	"red":     termenv.ANSIRed,
	"green":   termenv.ANSIGreen,
	"yellow":  termenv.ANSIYellow,
	"blue":    termenv.ANSIBlue,
	"magenta": termenv.ANSIMagenta,
	"cyan":    termenv.ANSICyan,
	"white":   termenv.ANSIWhite,
}

// foregrounds mirrors the background table. Unlike backgrounds, unknown
// foreground names are forwarded silently (dropped), not rejected.
var foregrounds = map[string]termenv.ANSIColor{
	"black":   termenv.ANSIBlack,
	"red":     termenv.ANSIRed,
	"green":   termenv.ANSIGreen,
	"yellow":  termenv.ANSIYellow,
	"blue":    termenv.ANSIBlue,
	"magenta": termenv.ANSIMagenta,
	"cyan":    termenv.ANSICyan,
	"white":   termenv.ANSIWhite,
}

var attributes = map[string]string{
	"bold":      termenv.BoldSeq,
	"faint":     termenv.FaintSeq,
	"italic":    termenv.ItalicSeq,
	"underline": termenv.UnderlineSeq,
}

// UnsupportedColorError reports a background color name absent from the
// fixed color table. It propagates to the caller; the framework does not
// handle it.
type UnsupportedColorError struct {
	Name string
}

func (e *UnsupportedColorError) Error() string {
	return fmt.Sprintf("'%s' is not yet supported", e.Name)
}

// Text holds the rendering options for one Echo call.
type Text struct {
	Background string
	Foreground string
	Style      string
}

// Render wraps text in the escape sequences selected by opts, followed by a
// reset. A non-empty background must be present in the background table;
// foreground and style names are best-effort and ignored when unrecognized.
func Render(text string, opts Text) (string, error) {
	var seqs []string

	if opts.Background != "" {
		c, ok := backgrounds[opts.Background]
		if !ok {
			return "", &UnsupportedColorError{Name: opts.Background}
		}
		seqs = append(seqs, c.Sequence(true))
	}
	if opts.Foreground != "" {
		if c, ok := foregrounds[opts.Foreground]; ok {
			seqs = append(seqs, c.Sequence(false))
		}
	}
	if opts.Style != "" {
		if attr, ok := attributes[opts.Style]; ok {
			seqs = append(seqs, attr)
		}
	}

	if len(seqs) == 0 {
		return text, nil
	}
	return termenv.CSI + strings.Join(seqs, ";") + "m" + text + termenv.CSI + termenv.ResetSeq + "m", nil
}
