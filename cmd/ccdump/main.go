// ccdump reads a raw CEA-608/CEA-708 caption-data stream and prints every
// completed caption to stdout (or a file), one per Ready status. Flag and
// logging setup follow _examples/ausocean-av/cmd/looper/main.go's shape:
// stdlib flag for CLI args, a lumberjack-rotated file log plus stderr,
// driven by an ausocean/utils/logging.Logger.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ausocean/utils/logging"
	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"

	caption "github.com/ssimwave/libcaption-go"
	"github.com/ssimwave/libcaption-go/config"
)

// Logging related defaults, mirroring cmd/looper's const block.
const (
	logMaxSize   = 50 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logSuppress  = true
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	inputPath := flag.String("in", "", "Path to a raw caption-data file (big-endian uint16 words).")
	outputPath := flag.String("out", "", "Path to write decoded captions to (default stdout).")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ccdump: ", err)
			os.Exit(1)
		}
	}
	if *inputPath != "" {
		cfg.Input = *inputPath
	}
	if *outputPath != "" {
		cfg.Output = *outputPath
	}

	l := newLogger(cfg)

	if err := run(cfg, l); err != nil {
		l.Fatal("ccdump failed", "error", err)
	}
}

func newLogger(cfg config.Config) logging.Logger {
	level := parseVerbosity(cfg.LogVerbosity)

	var w io.Writer = os.Stderr
	if cfg.LogPath != "" {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.LogPath,
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackup,
			MaxAge:     logMaxAge,
		})
	}
	return logging.New(level, w, logSuppress)
}

func parseVerbosity(v string) int8 {
	switch v {
	case "debug":
		return logging.Debug
	case "warning":
		return logging.Warning
	case "error":
		return logging.Error
	default:
		return logging.Info
	}
}

// run decodes cfg.Input end to end and writes every completed caption to
// cfg.Output.
func run(cfg config.Config, l logging.Logger) error {
	if cfg.Input == "" {
		return errors.New("ccdump: no input file given")
	}

	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return errors.Wrap(err, "ccdump: could not read input")
	}

	out := os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return errors.Wrap(err, "ccdump: could not create output")
		}
		defer f.Close()
		out = f
	}

	words, err := readWords(cfg, data, l)
	if err != nil {
		return err
	}

	var f caption.Frame
	f.Init()
	var rollup caption.RollupValidator
	var popOn caption.PopOnValidator

	for i, w := range words {
		status := f.Decode(w.word, float64(i), &rollup, &popOn, w.channel, cfg.ProcessXDS)
		l.Debug("decoded word", "index", i, "status", status.String())
		if status == caption.StatusReady {
			fmt.Fprintln(out, caption.FrameToText(&f))
		}
		if status == caption.StatusError {
			l.Warning("decode error", "index", i, "detail", f.Detail.Types)
		}
	}
	return nil
}

type ccWord struct {
	word    uint16
	channel caption.ChannelType
}

// readWords interprets data per cfg.Channel: raw big-endian uint16 words
// for the field1/field2/dtvcc channels, or, for sei, a single H.264 SEI
// itu_t_t35 payload: the whole file is parsed as one payload and is not
// split into records.
func readWords(cfg config.Config, data []byte, l logging.Logger) ([]ccWord, error) {
	if cfg.Channel == config.ChannelSEIWrapped {
		parsed, err := caption.CEA708ToCCData(data)
		if err != nil {
			return nil, errors.Wrap(err, "ccdump: could not parse SEI payload")
		}
		words := make([]ccWord, len(parsed))
		for i, w := range parsed {
			words[i] = ccWord{word: w.Word, channel: w.Channel}
		}
		return words, nil
	}

	ch := channelFor(cfg.Channel)
	var words []ccWord
	for len(data) >= 2 {
		w := binary.BigEndian.Uint16(data[:2])
		data = data[2:]
		words = append(words, ccWord{word: w, channel: ch})
	}
	if len(data) != 0 {
		l.Warning("trailing odd byte in input, ignored")
	}
	return words, nil
}

func channelFor(c config.Channel) caption.ChannelType {
	switch c {
	case config.ChannelField2:
		return caption.NtscField2
	case config.ChannelDTVCC:
		return caption.DtvccData
	default:
		return caption.NtscField1
	}
}
