// Command hexapodctl is a host-side interactive client for a hexapod
// controller board: it reads line commands from stdin, translates them
// into the board's plain text wire commands, and streams them over a
// serial connection, printing whatever the board writes back.
//
// Grounded on cmd/manipulator/main.go's REPL shape (bufio.Scanner over
// stdin, flag for port/baud, switch-on-command-word dispatch); the
// itohio/dndm pub-sub transport that file used is replaced here with
// github.com/tarm/serial directly, since dndm requires a sibling
// module this project does not carry (see DESIGN.md).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/tarm/serial"
)

func main() {
	help := flag.Bool("help", false, "Show help message")
	port := flag.String("port", "/dev/ttyACM0", "Serial port path")
	baud := flag.Int("baud", 115200, "Serial port baud rate")
	flag.Parse()

	if *help {
		printUsage()
		return
	}

	cfg := &serial.Config{Name: *port, Baud: *baud}
	conn, err := serial.OpenPort(cfg)
	if err != nil {
		slog.Error("failed to open serial port", "port", *port, "baud", *baud, "err", err)
		os.Exit(1)
	}
	defer conn.Close()

	go streamBoardOutput(conn)

	fmt.Println("hexapodctl - interactive hexapod client")
	fmt.Printf("port: %s baud: %d\n\n", *port, *baud)
	printUsage()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		wire, err := translate(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if wire == "" {
			return
		}

		if _, err := conn.Write([]byte(wire + "\n")); err != nil {
			slog.Error("write failed", "err", err)
		}
	}
}

// translate converts one REPL line into the board's wire command, or
// returns "" to signal the caller should exit (the "quit" command).
func translate(line string) (string, error) {
	parts := strings.Fields(line)
	switch parts[0] {
	case "sit":
		return "SIT", nil
	case "stand":
		return "STAND", nil
	case "neutral":
		return "NEUTRAL", nil
	case "walk":
		return translateWalk(parts[1:])
	case "vel":
		return translateVel(parts[1:])
	case "stop":
		return "VEL 0 0 0", nil
	case "status":
		return "STATUS", nil
	case "quit", "exit":
		return "", nil
	default:
		return "", fmt.Errorf("unknown command: %s", parts[0])
	}
}

// translateWalk builds a "WALK x y yaw speed" wire command from
// "walk <x> <y> <yaw> <speed>" (millimetres, hundredths-of-radian,
// mm/s).
func translateWalk(args []string) (string, error) {
	if len(args) != 4 {
		return "", fmt.Errorf("usage: walk <x> <y> <yaw> <speed>")
	}
	vals, err := parseFloats(args)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("WALK %g %g %g %g", vals[0], vals[1], vals[2], vals[3]), nil
}

// translateVel builds a "VEL x y yaw" wire command from "vel <x> <y>
// <yaw>", setting the continuous walk velocity.
func translateVel(args []string) (string, error) {
	if len(args) != 3 {
		return "", fmt.Errorf("usage: vel <x> <y> <yaw>")
	}
	vals, err := parseFloats(args)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("VEL %g %g %g", vals[0], vals[1], vals[2]), nil
}

func parseFloats(args []string) ([]float64, error) {
	vals := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", a)
		}
		vals[i] = v
	}
	return vals, nil
}

// streamBoardOutput copies whatever the board writes (status lines,
// acks) to stdout until the connection closes.
func streamBoardOutput(conn *serial.Port) {
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		fmt.Printf("\n< %s\n> ", scanner.Text())
	}
}

func printUsage() {
	fmt.Println("Commands:")
	fmt.Println("  sit                        - enqueue sit()")
	fmt.Println("  stand                      - enqueue stand()")
	fmt.Println("  neutral                    - enqueue return_to_neutral()")
	fmt.Println("  walk <x> <y> <yaw> <speed> - walk_setup(relative_pose, speed)")
	fmt.Println("  vel <x> <y> <yaw>          - set_walk_velocity(pose)")
	fmt.Println("  stop                       - set_walk_velocity(0)")
	fmt.Println("  status                     - request a status line")
	fmt.Println("  quit                       - exit")
	fmt.Println()
}
