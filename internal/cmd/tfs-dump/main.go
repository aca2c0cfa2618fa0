// Command tfs-dump decodes a tfs string and dumps its contents.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/go-faster/tfs"
	"github.com/go-faster/tfs/internal/app"
)

func main() {
	schema := flag.Int("schema", int(tfs.Version2), "wire schema version (1 or 2)")
	flag.Parse()

	app.Run(func(ctx context.Context, lg *zap.Logger) error {
		if flag.NArg() != 1 {
			return errors.New("usage: tfs-dump [-schema N] <tfs string>")
		}
		q, err := tfs.DecodeText(flag.Arg(0), tfs.Version(*schema))
		if err != nil {
			return errors.Wrap(err, "decode")
		}
		fmt.Println(q.DebugString())
		return nil
	})
}
