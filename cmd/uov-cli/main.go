// Package main provides the uov-cli command line interface for exercising the
// UOV signature engine.
package main

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	kuov "github.com/BackendStack21/k-uov-go"
	"github.com/BackendStack21/k-uov-go/core"
	"github.com/BackendStack21/k-uov-go/sign"
	"github.com/BackendStack21/k-uov-go/utils"
)

const (
	version = "0.3.0"
	appName = "uov-cli"
)

// OutputFormat represents the encoding used for byte fields
type OutputFormat string

const (
	FormatHex    OutputFormat = "hex"
	FormatBase64 OutputFormat = "base64"
)

// CLIConfig holds CLI configuration
type CLIConfig struct {
	Params       kuov.Params
	OutputFormat OutputFormat
	OutputFile   string
	Verbose      bool
	Timing       bool
}

// FormExport is a quadratic form as nested arrays
type FormExport struct {
	A [][]uint32 `json:"a"`
	B []uint32   `json:"b"`
	C uint32     `json:"c"`
}

// KeysExport holds both halves of a key pair for inspection
type KeysExport struct {
	PublicForms  []FormExport `json:"public_forms"`
	CentralForms []FormExport `json:"central_forms"`
	AffineD      [][]uint32   `json:"affine_d"`
	AffineE      []uint32     `json:"affine_e"`
}

// DemoExport is the result of one keygen, sign, verify round
type DemoExport struct {
	Params        kuov.Params `json:"params"`
	PublicKeyHash string      `json:"public_key_hash"`
	Message       string      `json:"message,omitempty"`
	Target        []uint32    `json:"target"`
	Signature     []uint32    `json:"signature"`
	Attempts      int         `json:"attempts"`
	Valid         bool        `json:"valid"`
	CreatedAt     string      `json:"created_at"`
	Keys          *KeysExport `json:"keys,omitempty"`
}

// ParamsExport describes one named parameter set
type ParamsExport struct {
	kuov.Params
	N int `json:"n"`
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "help", "--help", "-h":
		printUsage()
	case "version", "--version", "-v":
		fmt.Printf("%s version %s\n", appName, version)
		fmt.Printf("k-uov library version %s\n", kuov.Version)
	case "demo":
		handleDemo(os.Args[2:])
	case "params":
		handleParams(os.Args[2:])
	case "benchmark":
		handleBenchmark(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`%s - Unbalanced Oil-and-Vinegar signature demonstrator

USAGE:
    %s <COMMAND> [OPTIONS]

COMMANDS:
    demo        Generate a key pair, sign a target and verify it
    params      List the named parameter sets
    benchmark   Time key generation, signing and verification
    version     Show version information
    help        Show this help message

OPTIONS:
    -l, --level <toy|31|251>   Named parameter set (default: toy)
        --oil <n>              Custom oil variable count
        --vinegar <n>          Custom vinegar variable count
        --prime <p>            Custom field modulus
        --target <y1,y2,...>   Target vector to sign (demo)
    -m, --message <text>       Hash a message to the target instead (demo)
        --seed <hex>           Derive the key pair from a 32+ byte seed (demo)
        --show-keys            Include both keys in the demo output
    -f, --format <hex|base64>  Encoding for byte fields (default: hex)
    -o, --output <file>        Write the result to a file
    -n, --iterations <n>       Benchmark iterations (default: 10)
        --chart <file>         Write benchmark histograms as HTML
    -v, --verbose              Progress on stderr
    -t, --timing               Timings on stderr

EXAMPLES:
    # Sign the document [1, 0] with the toy parameters over GF(2)
    %s demo --target 1,0

    # Sign a message with a custom instance over GF(7)
    %s demo --oil 3 --vinegar 6 --prime 7 --message "hello"

    # Benchmark and chart the UOV-31 set
    %s benchmark --level 31 --iterations 50 --chart bench.html
`, appName, appName, appName, appName, appName)
}

// ============================================================================
// Commands
// ============================================================================

func handleDemo(args []string) {
	config, err := parseConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	params := config.Params

	start := time.Now()
	var kp *kuov.KeyPair
	if seedHex := getArg(args, "--seed", ""); seedHex != "" {
		seed, decodeErr := hex.DecodeString(seedHex)
		if decodeErr != nil {
			fmt.Fprintf(os.Stderr, "Error decoding seed: %v\n", decodeErr)
			os.Exit(1)
		}
		kp, err = sign.GenerateKeyPairFromSeed(params, seed)
		utils.Zeroize(seed)
	} else {
		kp, err = sign.GenerateKeyPairWithReader(params, utils.RandReader)
	}
	keygenElapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating key pair: %v\n", err)
		os.Exit(1)
	}
	if config.Verbose {
		fmt.Fprintf(os.Stderr, "Generated key pair: o=%d v=%d p=%d\n", params.O, params.V, params.P)
	}

	message := getArg(args, "--message", "-m")
	var target kuov.Vector
	switch {
	case message != "":
		target, err = sign.HashToTarget(kp.PrivateKey.PublicKeyHash, []byte(message), params)
	case getArg(args, "--target", "") != "":
		target, err = parseTarget(getArg(args, "--target", ""), params)
	default:
		target = defaultTarget(params)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building target: %v\n", err)
		os.Exit(1)
	}

	start = time.Now()
	sig, attempts, err := sign.SignWithAttempts(&kp.PrivateKey, target, utils.RandReader)
	signElapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing: %v\n", err)
		os.Exit(1)
	}
	if config.Verbose {
		fmt.Fprintf(os.Stderr, "Signed after %d vinegar draw(s)\n", attempts)
	}

	start = time.Now()
	valid := sign.Verify(&kp.PublicKey, sig, target)
	verifyElapsed := time.Since(start)

	if config.Timing {
		fmt.Fprintf(os.Stderr, "Key generation took: %v\n", keygenElapsed)
		fmt.Fprintf(os.Stderr, "Signing took: %v\n", signElapsed)
		fmt.Fprintf(os.Stderr, "Verification took: %v\n", verifyElapsed)
	}

	export := DemoExport{
		Params:        params,
		PublicKeyHash: encodeBytes(kp.PrivateKey.PublicKeyHash, config.OutputFormat),
		Message:       message,
		Target:        target,
		Signature:     sig.X,
		Attempts:      attempts,
		Valid:         valid,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if hasFlag(args, "--show-keys", "") {
		export.Keys = exportKeys(kp)
	}

	output, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling output: %v\n", err)
		os.Exit(1)
	}
	writeOutput(output, config.OutputFile)

	if !valid {
		fmt.Fprintf(os.Stderr, "Error: signature did not verify\n")
		os.Exit(1)
	}
}

func handleParams(args []string) {
	config, err := parseConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sets := make([]ParamsExport, 0, len(core.Levels))
	for _, level := range core.Levels {
		p, _ := core.GetParams(level)
		sets = append(sets, ParamsExport{Params: p, N: p.N()})
	}

	output, err := json.MarshalIndent(sets, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling output: %v\n", err)
		os.Exit(1)
	}
	writeOutput(output, config.OutputFile)
}

// ============================================================================
// Utility Functions
// ============================================================================

func parseConfig(args []string) (CLIConfig, error) {
	config := CLIConfig{
		Params:       core.UOVToyParams,
		OutputFormat: FormatHex,
	}

	level := getArg(args, "--level", "-l")
	switch strings.ToUpper(level) {
	case "TOY", "UOV-TOY", "UOV_TOY":
		config.Params = core.UOVToyParams
	case "31", "UOV-31", "UOV_31":
		config.Params = core.UOV31Params
	case "251", "UOV-251", "UOV_251":
		config.Params = core.UOV251Params
	case "":
		// No level specified, use default
	default:
		return config, fmt.Errorf("invalid security level '%s'. Must be one of: toy, 31, 251", level)
	}

	oStr, vStr, pStr := getArg(args, "--oil", ""), getArg(args, "--vinegar", ""), getArg(args, "--prime", "")
	if oStr != "" || vStr != "" || pStr != "" {
		if oStr == "" || vStr == "" || pStr == "" {
			return config, errors.New("custom parameters need all of --oil, --vinegar and --prime")
		}
		o, err := parsePositive(oStr, "o")
		if err != nil {
			return config, err
		}
		v, err := parsePositive(vStr, "v")
		if err != nil {
			return config, err
		}
		p, err := strconv.ParseUint(pStr, 10, 32)
		if err != nil {
			return config, fmt.Errorf("invalid modulus '%s': %w", pStr, err)
		}
		params, err := core.NewParams(o, v, uint32(p))
		if err != nil {
			return config, err
		}
		config.Params = params
	}

	format := getArg(args, "--format", "-f")
	switch format {
	case "hex":
		config.OutputFormat = FormatHex
	case "base64":
		config.OutputFormat = FormatBase64
	case "":
		// No format specified, use default
	default:
		return config, fmt.Errorf("invalid format '%s'. Must be one of: hex, base64", format)
	}

	config.OutputFile = getArg(args, "--output", "-o")
	config.Verbose = hasFlag(args, "--verbose", "-v")
	config.Timing = hasFlag(args, "--timing", "-t")

	return config, nil
}

func parsePositive(s, name string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s': %w", name, s, err)
	}
	if err := utils.CheckPositive(n, name); err != nil {
		return 0, err
	}
	return n, nil
}

// parseTarget reads a comma separated list of o field elements.
func parseTarget(s string, params kuov.Params) (kuov.Vector, error) {
	parts := strings.Split(s, ",")
	if len(parts) != params.O {
		return nil, fmt.Errorf("target has %d entries, want %d", len(parts), params.O)
	}
	target := make(kuov.Vector, len(parts))
	for i, part := range parts {
		x, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("target entry %d: %w", i, err)
		}
		if x >= uint64(params.P) {
			return nil, fmt.Errorf("target entry %d: %d is not below %d", i, x, params.P)
		}
		target[i] = uint32(x)
	}
	return target, nil
}

// defaultTarget is [1, 0, ..., 0].
func defaultTarget(params kuov.Params) kuov.Vector {
	target := make(kuov.Vector, params.O)
	target[0] = 1
	return target
}

func exportForms(forms []kuov.QuadraticForm) []FormExport {
	out := make([]FormExport, len(forms))
	for k, q := range forms {
		out[k] = FormExport{A: matrixRows(q.A), B: q.B, C: q.C}
	}
	return out
}

func exportKeys(kp *kuov.KeyPair) *KeysExport {
	return &KeysExport{
		PublicForms:  exportForms(kp.PublicKey.Forms),
		CentralForms: exportForms(kp.PrivateKey.Central),
		AffineD:      matrixRows(kp.PrivateKey.Affine.D),
		AffineE:      kp.PrivateKey.Affine.E,
	}
}

func matrixRows(m kuov.Matrix) [][]uint32 {
	rows := make([][]uint32, m.Rows)
	for i := range rows {
		rows[i] = m.Row(i)
	}
	return rows
}

func getArg(args []string, long, short string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == long || (short != "" && args[i] == short) {
			return args[i+1]
		}
	}
	return ""
}

func hasFlag(args []string, long, short string) bool {
	for _, arg := range args {
		if arg == long || (short != "" && arg == short) {
			return true
		}
	}
	return false
}

func encodeBytes(data []byte, format OutputFormat) string {
	switch format {
	case FormatBase64:
		return base64.StdEncoding.EncodeToString(data)
	default:
		return hex.EncodeToString(data)
	}
}

func writeOutput(data []byte, filename string) {
	if filename != "" {
		if err := os.WriteFile(filename, data, 0600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Println(string(data))
	}
}
