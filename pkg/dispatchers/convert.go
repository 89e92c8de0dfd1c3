package dispatchers

import (
	"strconv"

	"github.com/serumstudio/hype.cli/pkg/command"
	"github.com/serumstudio/hype.cli/pkg/usage"
)

// convert turns a raw token into a value of the option's declared kind.
// Raw values are never passed through on a mismatch; the caller gets a
// TypeConversion usage error instead.
func convert(cmd string, opt command.Option, raw string) (any, error) {
	switch opt.Kind {
	case command.KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, usage.TypeConversion(cmd, opt.Flag, raw, opt.Kind.String())
		}
		return n, nil
	case command.KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, usage.TypeConversion(cmd, opt.Flag, raw, opt.Kind.String())
		}
		return f, nil
	case command.KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, usage.TypeConversion(cmd, opt.Flag, raw, opt.Kind.String())
		}
		return b, nil
	default:
		return raw, nil
	}
}
