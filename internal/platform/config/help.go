// internal/platform/config/help.go
package config

import (
	"fmt"
	"os"
	"runtime"
)

const helpText = `
bucketx - Public object-storage bucket prober

USAGE:
  bucketx [-w wordlist.txt] [-t threads] [options]

  Every line of the wordlist is a candidate bucket name. Each candidate is
  probed with one anonymous GET to http://<candidate>.<host> and classified as
  Working Bucket, Non-existent or Private Bucket, Unknown Status or Error.

CORE OPTIONS:
  -w, --wordlist string    Wordlist path, relative to the program directory
                           unless absolute (default: "wordlist.txt")
  -t, --threads int        Number of concurrent workers (default: 5)
      --dedupe             Drop repeated candidates (default: false)

PROBE OPTIONS:
      --host string        Storage host (default: "s3.amazonaws.com")
      --timeout duration   Per-probe timeout (default: 5s)
      --rate float         Max requests per second, 0=unlimited (default: 0)
  -p, --proxy string       HTTP(S) or SOCKS5 proxy URL (optional)
      --user-agent string  User-Agent header (default: "bucketx/1.0")

OUTPUT OPTIONS:
  -o, --out string         Output directory (default: program directory)
      --xlsx               Also write Results-<wordlist>.xlsx
      --jsonl              Also write Results-<wordlist>.jsonl
      --db string          Also append results to a SQLite database

CONSOLE OPTIONS:
      --ui string          pterm, raw or quiet (default: "pterm")
      --log-level string   debug, info, warn or error (default: "warn")

INFO:
  -c, --config string      YAML config file
  -v, --version            Print version information and exit
  -h, --help               Show this help message

EXAMPLES:
  Default wordlist next to the binary:
    bucketx

  Custom list with more workers:
    bucketx -w companies.txt -t 20

  Plain output for logs, with a spreadsheet report:
    bucketx -w companies.txt --ui raw --xlsx

  Slow and steady through a proxy:
    bucketx -w companies.txt --rate 5 -p socks5://127.0.0.1:9050

CONFIG FILE:
  core:
    wordlist: companies.txt
    threads: 10
    dedupe: true
  probe:
    host: s3.amazonaws.com
    timeout: 5s
    rate: 20
  output:
    dir: ./results
    xlsx: true
    db: results.db
  ui:
    mode: raw

ENVIRONMENT VARIABLES:
  BUCKETX_CONFIG, BUCKETX_WORDLIST, BUCKETX_THREADS, BUCKETX_DEDUPE,
  BUCKETX_HOST, BUCKETX_TIMEOUT, BUCKETX_RATE, BUCKETX_PROXY,
  BUCKETX_USER_AGENT, BUCKETX_OUT, BUCKETX_XLSX, BUCKETX_JSONL, BUCKETX_DB,
  BUCKETX_UI, BUCKETX_LOG_LEVEL

  Precedence: flags > environment > config file > defaults.

OUTPUT:
  Results-<wordlist>.txt   one "<Result>: <url>" line per candidate (appended)
  Results-<wordlist>.csv   "Bucket URL,Result Type" header plus one row per
                           candidate (rewritten on every run)

EXIT CODES:
  0  every candidate was probed and recorded
  1  scan failed, output could not be written, or interrupted
  2  invalid configuration or unreadable wordlist
`

// PrintHelp prints the custom help message and exits.
func PrintHelp() {
	fmt.Fprint(os.Stdout, helpText)
	os.Exit(0)
}

// PrintVersion prints version information and exits.
func PrintVersion(version, commit, date string) {
	fmt.Printf("bucketx %s\n", version)
	fmt.Printf("  Commit:  %s\n", commit)
	fmt.Printf("  Built:   %s\n", date)
	fmt.Printf("  Go:      %s\n", runtime.Version())
	os.Exit(0)
}
