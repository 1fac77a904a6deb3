package benchmark_test

import (
	"testing"

	"github.com/dzonerzy/go-noshell/cmdline"
	"github.com/dzonerzy/go-noshell/parser"
)

var engineTable = parser.NewLookupTable(
	parser.LookupEntry{Flag: parser.ShortFlag('p'), ID: "port", AtMost: parser.One},
	parser.LookupEntry{Flag: parser.LongFlag("port"), ID: "port", AtMost: parser.One},
	parser.LookupEntry{Flag: parser.ShortFlag('v'), ID: "verbose", AtMost: parser.Zero},
	parser.LookupEntry{Flag: parser.LongFlag("include"), ID: "include", AtMost: parser.Many},
)

func BenchmarkTokenize(b *testing.B) {
	inputs := []string{"--port", "-v", "-3.5e2", "value", "-", "--"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = parser.Tokenize(inputs[i%len(inputs)])
	}
}

func BenchmarkParseAndGet(b *testing.B) {
	argv := []string{"--port", "8080", "-v", "file", "--include", "1", "2", "3"}
	buf := make([]parser.Arg, parser.DefaultCapacity)
	dst := make([]int, 0, 8)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		args, err := parser.TryParseFrom(argv, &engineTable, buf)
		if err != nil {
			b.Fatal(err)
		}
		if _, _, err := parser.TryGetOne(&args, "port", parser.Int); err != nil {
			b.Fatal(err)
		}
		if _, _, err := parser.TryGetMany(&args, "include", dst[:0], parser.Int); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWords(b *testing.B) {
	line := `serve --port 8080 -v "my file.txt" 'another one' --include a b c`
	dst := make([]string, 0, 16)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := cmdline.Words(line, dst); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnescapeInPlace(b *testing.B) {
	src := []byte(`echo \"quoted\" \$HOME back\\slash \
continued`)
	buf := make([]byte, len(src))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		copy(buf, src)
		_ = cmdline.Unescape(buf[:0], buf)
	}
}
