package inspect

import (
	"context"
	"errors"
	"fmt"
	"io"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"crcss/css"
	"crcss/state"
)

// Length decodes every command line argument as a CSS length and prints its
// packed representation.
func Length(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("length")

	if cmd.Args().Len() == 0 {
		return errors.New("no values have been specified")
	}
	return describeLengths(writerOf(cmd), log, cmd.Args().Slice())
}

func describeLengths(w io.Writer, log *zap.Logger, values []string) (err error) {
	for _, s := range values {
		l, er := css.ParseLength(s)
		if er != nil {
			log.Debug("Unable to decode length", zap.String("value", s), zap.Error(er))
			fmt.Fprintf(w, "%q\terror: %v\n", s, er)
			err = multierr.Append(err, fmt.Errorf("%q: %w", s, er))
			continue
		}
		fmt.Fprintf(w, "%q\t%s\tunit=%s value=%d float=%g generic=%t packed=%#08x\n",
			s, l, l.Unit, l.Value, l.Float(), l.IsGeneric(), uint32(l.Pack()))
	}
	if err != nil {
		return fmt.Errorf("%d of %d value(s) could not be decoded: %w", len(multierr.Errors(err)), len(values), err)
	}
	return nil
}
