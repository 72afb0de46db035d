// bbeeprog programs a parallel EEPROM (AT28C256) on a breadboard using
// nothing but a serial adapter and three SN74LV8153 serial-to-parallel
// latches wired to the address, data and write-enable lines.
//
// Usage:
//
//	bbeeprog init DEVICE
//	bbeeprog flash [-only-changes=OLD_FILE] DEVICE FILE
//
// Run `bbeeprog init` before inserting the EEPROM, otherwise the first
// byte may be overwritten with zero.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gschwaer/breadboard-eeprom-programmer/image"
	"github.com/gschwaer/breadboard-eeprom-programmer/programmer"
	"github.com/gschwaer/breadboard-eeprom-programmer/serial"
)

// Exit codes, one per failure class so wrapper scripts can tell them
// apart.
const (
	exitOK        = 0
	exitUsage     = 1
	exitTransport = 2 // serial device could not be opened
	exitImage     = 3 // image unreadable, too large, or length mismatch
	exitWrite     = 4 // transport failed mid-run
)

const usageText = `Program an EEPROM with provided binary data.

Usage: bbeeprog init DEVICE
       bbeeprog flash [-only-changes=OLD_FILE] DEVICE FILE
       bbeeprog -h

Arguments:
  DEVICE  path to the serial device
  FILE    binary input file

Options:
  -h                       show this help
  -only-changes=OLD_FILE   flash only bytes that differ in FILE and OLD_FILE
  -v                       verbose logging

Warning: Make sure to run 'bbeeprog init' before inserting your EEPROM,
         otherwise the first byte may be overwritten to zero.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		fmt.Fprint(os.Stderr, usageText)
		return exitUsage
	}

	switch args[0] {
	case "init":
		return runInit(args[1:])
	case "flash":
		return runFlash(args[1:])
	case "-h", "--help", "help":
		fmt.Print(usageText)
		return exitOK
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		fmt.Fprint(os.Stderr, usageText)
		return exitUsage
	}
}

func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprint(os.Stderr, usageText)
		return exitUsage
	}
	device := fs.Arg(0)

	port, err := serial.Open(device, serial.DefaultBaudRate)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitTransport
	}
	defer func() { _ = port.Close() }()

	prog := programmer.New(port, programmer.WithLogger(stdLogger{verbose: *verbose}))
	if err := prog.Initialize(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitWrite
	}

	fmt.Println("Initialized. Ready for EEPROM insertion.")
	return exitOK
}

func runFlash(args []string) int {
	fs := flag.NewFlagSet("flash", flag.ContinueOnError)
	onlyChanges := fs.String("only-changes", "", "flash only bytes that differ from this baseline file")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 2 {
		fmt.Fprint(os.Stderr, usageText)
		return exitUsage
	}
	device, file := fs.Arg(0), fs.Arg(1)

	target, err := image.Load(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitImage
	}

	var baseline image.Image
	if *onlyChanges != "" {
		baseline, err = image.Load(*onlyChanges)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitImage
		}
		fmt.Println("Note: Flashing in changes only mode.")
	}

	port, err := serial.Open(device, serial.DefaultBaudRate)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitTransport
	}
	defer func() { _ = port.Close() }()

	prog := programmer.New(port, programmer.WithLogger(stdLogger{verbose: *verbose}))

	report, err := prog.Program(context.Background(), target, baseline)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if report != nil && report.LastCompleted >= 0 {
			fmt.Fprintf(os.Stderr, "resume manually after address 0x%04x\n", report.LastCompleted)
		}
		return flashExitCode(err)
	}

	fmt.Printf("Wrote %d byte, skipped %d byte (no change).\n",
		report.BytesWritten, report.BytesSkipped)
	fmt.Printf("Writing took %.3fs.\n", report.Elapsed.Seconds())
	return exitOK
}

// flashExitCode classifies a programming failure for the exit status.
// Image problems (length mismatch, oversize) are configuration errors;
// everything else means the run died mid-flight on the transport.
func flashExitCode(err error) int {
	var mismatch *image.LengthMismatchError
	var tooLarge *image.TooLargeError
	switch {
	case errors.As(err, &mismatch), errors.As(err, &tooLarge):
		return exitImage
	default:
		return exitWrite
	}
}

// stdLogger adapts the standard log package to the programmer's Logger
// interface.
type stdLogger struct {
	verbose bool
}

func (l stdLogger) Debug(msg string, kv ...interface{}) {
	if l.verbose {
		log.Println(append([]interface{}{"DEBUG", msg}, kv...)...)
	}
}

func (l stdLogger) Info(msg string, kv ...interface{}) {
	log.Println(append([]interface{}{msg}, kv...)...)
}

func (l stdLogger) Error(msg string, kv ...interface{}) {
	log.Println(append([]interface{}{"ERROR", msg}, kv...)...)
}
