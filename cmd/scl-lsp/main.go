package main

import (
	"context"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/scott-cotton/cli"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const lsName = "scl-lsp"

var (
	version = "0.1.0"
)

type LSPConfig struct {
	Debug bool `cli:"name=debug desc='log requests at debug level to stderr'"`
	Main  *cli.Command
}

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &LSPConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, lsName).
		WithSynopsis("scl-lsp [-debug]").
		WithDescription("scl-lsp serves the language server protocol for SCL on stdin and stdout.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
}

func serve(cfg *LSPConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Main.Parse(cc, args); err != nil {
		return err
	}
	zapCfg := zap.NewProductionConfig()
	if cfg.Debug {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zl, err := zapCfg.Build()
	if err != nil {
		return err
	}
	defer zl.Sync()
	logger := zapr.NewLogger(zl).WithName(lsName)

	ctx := logr.NewContext(context.Background(), logger)
	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  os.Stdin,
		write: os.Stdout,
	})
	conn := jsonrpc2.NewConn(stream)
	server := newServer(conn)
	handler := protocol.ServerHandler(server, nil)
	logger.Info("starting", "version", version)
	conn.Go(ctx, handler)
	<-conn.Done()
	logger.Info("connection closed", "reason", conn.Err())
	return nil
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
