// waymark-watch tails the monitor websocket feed and prints a compact
// line per snapshot. Handy for watching cue state over ssh.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"

	"github.com/quillon/waymark/pkg/nav"
)

func main() {
	addr := flag.String("addr", "localhost:7717", "monitor host:port")
	raw := flag.Bool("raw", false, "print raw JSON frames")
	flag.Parse()

	url := fmt.Sprintf("ws://%s/ws", *addr)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dial %s: %v\n", url, err)
		os.Exit(1)
	}
	defer conn.Close()
	fmt.Printf("connected to %s\n", url)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		conn.Close()
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			fmt.Printf("connection closed: %v\n", err)
			return
		}
		if *raw {
			fmt.Println(string(msg))
			continue
		}
		var st nav.State
		if err := json.Unmarshal(msg, &st); err != nil {
			fmt.Fprintf(os.Stderr, "bad frame: %v\n", err)
			continue
		}
		printState(st)
	}
}

func printState(st nav.State) {
	active := 0
	for _, c := range st.Categories {
		if !c.Enabled || !c.Found {
			continue
		}
		active++
		fmt.Printf("  %-12s d=%6.1f vol=%.2f pan=%+.2f zone=%s\n",
			c.Category, c.Distance, c.Volume, c.Pan, c.Zone)
	}
	if active == 0 {
		fmt.Println("  (no targets)")
	}
	fmt.Printf("t=%.1fs\n", st.Time)
}
