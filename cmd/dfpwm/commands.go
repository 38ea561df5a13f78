package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cwbudde/algo-dfpwm/codec/dfpwm"
	"github.com/cwbudde/algo-dfpwm/codec/dfpwm/stream"
	"github.com/cwbudde/algo-dfpwm/dsp/core"
	"github.com/cwbudde/algo-dfpwm/dsp/pcm"
	"github.com/cwbudde/algo-dfpwm/dsp/signal"
	"github.com/cwbudde/algo-dfpwm/measure/roundtrip"
	timestats "github.com/cwbudde/algo-dfpwm/stats/time"
)

// ioFlags are shared by every command that moves raw data.
type ioFlags struct {
	in     string
	out    string
	format string
	block  int
}

func (f *ioFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.in, "in", "-", "input file, - for stdin")
	fs.StringVar(&f.out, "out", "-", "output file, - for stdout")
	fs.StringVar(&f.format, "format", "s8", "raw PCM format: s8, u8 or s16le")
	fs.IntVar(&f.block, "block", core.DefaultBlockSize, "I/O block size in bytes")
}

func newFlagSet(name string, env *environment) *flag.FlagSet {
	fs := flag.NewFlagSet("dfpwm "+name, flag.ContinueOnError)
	fs.SetOutput(env.stderr)

	return fs
}

func runEncode(args []string, env *environment) error {
	var iof ioFlags

	fs := newFlagSet("encode", env)
	iof.register(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	format, err := parseFormat(iof.format)
	if err != nil {
		return err
	}

	enc, err := dfpwm.NewEncoder()
	if err != nil {
		return err
	}

	src, err := openInput(iof.in, env)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := openOutput(iof.out, env)
	if err != nil {
		return err
	}
	defer dst.Close()

	out := &countingWriter{w: dst}
	w := stream.NewWriter(out, chain{&toSigned{format: format}, enc})

	// Hide any WriterTo on src so the block size is honoured.
	read, err := io.CopyBuffer(w, struct{ io.Reader }{src}, make([]byte, max(iof.block, 1)))
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	samples := int(read) / format.width()

	log.Info().
		Str("format", format.String()).
		Int("samples", samples).
		Int64("packed_bytes", out.n).
		Dur("duration", core.DefaultProcessorConfig().Duration(samples)).
		Msg("encoded")

	return dst.Close()
}

func runDecode(args []string, env *environment) error {
	var iof ioFlags

	fs := newFlagSet("decode", env)
	iof.register(fs)
	lowpass := fs.Int("lowpass", dfpwm.DefaultLowpassStrength, "low-pass strength in [0, 256]")

	if err := fs.Parse(args); err != nil {
		return err
	}

	format, err := parseFormat(iof.format)
	if err != nil {
		return err
	}

	dec, err := dfpwm.NewDecoder(dfpwm.WithLowpassStrength(*lowpass))
	if err != nil {
		return err
	}

	src, err := openInput(iof.in, env)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := openOutput(iof.out, env)
	if err != nil {
		return err
	}
	defer dst.Close()

	r := stream.NewReaderSize(src, chain{dec, fromSigned{format: format}}, iof.block)

	written, err := io.Copy(dst, r)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	samples := int(written) / format.width()

	log.Info().
		Str("format", format.String()).
		Int("lowpass", *lowpass).
		Int("samples", samples).
		Dur("duration", core.DefaultProcessorConfig().Duration(samples)).
		Msg("decoded")

	return dst.Close()
}

func runRoundtrip(args []string, env *environment) error {
	var iof ioFlags

	fs := newFlagSet("roundtrip", env)
	iof.register(fs)
	lowpass := fs.Int("lowpass", dfpwm.DefaultLowpassStrength, "low-pass strength in [0, 256]")
	rate := fs.Float64("rate", core.DefaultSampleRate, "sample rate in Hz, used for durations and the spectral band")

	if err := fs.Parse(args); err != nil {
		return err
	}

	format, err := parseFormat(iof.format)
	if err != nil {
		return err
	}

	src, err := openInput(iof.in, env)
	if err != nil {
		return err
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("roundtrip: read: %w", err)
	}

	conv := toSigned{format: format}
	samples := dfpwm.BytesToSamples(conv.Process(raw, true))

	cfg := core.ApplyProcessorOptions(core.WithSampleRate(*rate))

	spectral := roundtrip.DefaultConfig()
	spectral.SampleRate = cfg.SampleRate

	res, err := roundtrip.Run(samples, *lowpass, spectral)
	if err != nil {
		return err
	}

	log.Debug().Int("samples", len(samples)).Float64("rate", cfg.SampleRate).Msg("roundtrip measured")

	dst, err := openOutput(iof.out, env)
	if err != nil {
		return err
	}
	defer dst.Close()

	printReport(dst, cfg, res, timestats.CalculateInt8(samples), timestats.CalculateInt8(res.Decoded))

	return dst.Close()
}

func printReport(w io.Writer, cfg core.ProcessorConfig, res roundtrip.Result, in, out timestats.Stats) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "samples\t%d\n", res.Samples)
	fmt.Fprintf(tw, "duration\t%v\n", cfg.Duration(res.Samples))
	fmt.Fprintf(tw, "packed bytes\t%d\n", res.PackedBytes)
	fmt.Fprintf(tw, "bit rate\t%.0f bit/s\n", cfg.BitRate())
	fmt.Fprintf(tw, "mean abs error\t%.2f\n", res.MeanAbsError)
	fmt.Fprintf(tw, "rms error\t%.2f\n", res.RMSError)
	fmt.Fprintf(tw, "max abs error\t%d\n", res.MaxAbsError)
	fmt.Fprintf(tw, "snr\t%.2f dB\n", res.SNR_dB)
	fmt.Fprintf(tw, "spectral snr\t%.2f dB\n", res.SpectralSNR_dB)
	fmt.Fprintf(tw, "correlation\t%.4f\n", res.Correlation)
	fmt.Fprintf(tw, "sign agreement\t%.4f\n", res.SignAgreement)
	fmt.Fprintf(tw, "\t\n")
	fmt.Fprintf(tw, "\tinput\tdecoded\n")
	fmt.Fprintf(tw, "rms\t%.2f dBFS\t%.2f dBFS\n", in.RMS_dB, out.RMS_dB)
	fmt.Fprintf(tw, "peak\t%.2f dBFS\t%.2f dBFS\n", in.Peak_dB, out.Peak_dB)
	fmt.Fprintf(tw, "dc\t%.4f\t%.4f\n", in.DC, out.DC)
	fmt.Fprintf(tw, "crest factor\t%.2f\t%.2f\n", in.CrestFactor, out.CrestFactor)
	fmt.Fprintf(tw, "zero crossings\t%d\t%d\n", in.ZeroCrossings, out.ZeroCrossings)
	fmt.Fprintf(tw, "clipped\t%d\t%d\n", in.Clipped, out.Clipped)

	tw.Flush()
}

func runGen(args []string, env *environment) error {
	fs := newFlagSet("gen", env)
	kind := fs.String("kind", "sine", "signal kind: sine, square, noise or dc")
	freq := fs.Float64("freq", 440, "frequency in Hz for sine and square")
	amp := fs.Float64("amp", 0.8, "amplitude (or dc level) relative to full scale")
	peak := fs.Float64("peak", 0, "if > 0, normalize the signal to this peak before quantizing")
	duration := fs.Duration("duration", time.Second, "signal length")
	rate := fs.Float64("rate", core.DefaultSampleRate, "sample rate in Hz")
	seed := fs.Int64("seed", 1, "seed for noise and dither")
	ditherName := fs.String("dither", "triangular", "dither: none, rectangular or triangular")
	out := fs.String("out", "-", "output file, - for stdout")
	formatName := fs.String("format", "s8", "raw PCM format: s8, u8 or s16le")

	if err := fs.Parse(args); err != nil {
		return err
	}

	format, err := parseFormat(*formatName)
	if err != nil {
		return err
	}

	ditherType, err := pcm.ParseDitherType(*ditherName)
	if err != nil {
		return err
	}

	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(*rate)},
		signal.WithSeed(*seed),
	)

	samples := gen.Config().Samples(*duration)

	floats, err := generate(gen, *kind, *freq, *amp, samples)
	if err != nil {
		return err
	}

	if *peak > 0 {
		if floats, err = signal.Normalize(floats, *peak); err != nil {
			return err
		}
	}

	quant, err := pcm.NewQuantizer(
		pcm.WithDitherType(ditherType),
		pcm.WithRNG(rand.New(rand.NewPCG(uint64(*seed), 0))),
	)
	if err != nil {
		return err
	}

	pcm8 := make([]int8, len(floats))
	quant.Process(pcm8, floats)

	dst, err := openOutput(*out, env)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := dst.Write(fromSigned{format: format}.Process(dfpwm.SamplesToBytes(pcm8), true)); err != nil {
		return fmt.Errorf("gen: write: %w", err)
	}

	log.Info().
		Str("kind", *kind).
		Int("samples", samples).
		Str("dither", ditherType.String()).
		Msg("generated")

	return dst.Close()
}

func generate(gen *signal.Generator, kind string, freq, amp float64, samples int) ([]float64, error) {
	switch kind {
	case "sine":
		return gen.Sine(freq, amp, samples)
	case "square":
		return gen.Square(freq, amp, samples)
	case "noise":
		return gen.WhiteNoise(amp, samples)
	case "dc":
		return gen.DC(amp, samples)
	default:
		return nil, fmt.Errorf("unknown signal kind %q (want sine, square, noise or dc)", kind)
	}
}

func openInput(path string, env *environment) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(env.stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	return f, nil
}

// nopWriteCloser keeps a shared stream such as stdout open.
type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// openOutput returns a writer whose Close may be called more than once.
func openOutput(path string, env *environment) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{env.stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}

	return &onceCloser{File: f}, nil
}

type onceCloser struct {
	*os.File
	closed bool
	err    error
}

func (c *onceCloser) Close() error {
	if !c.closed {
		c.closed = true
		c.err = c.File.Close()
	}

	return c.err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
