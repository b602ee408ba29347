// lixi is the terminal claim flow: submit a code, open the envelope stage
// by stage, then export the receipt.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/seallabs/lixi/claim"
	"github.com/seallabs/lixi/config"
	"github.com/seallabs/lixi/fortune"
	"github.com/seallabs/lixi/logger/xzap"
	"github.com/seallabs/lixi/receipt"
	"github.com/seallabs/lixi/reveal"
	"github.com/seallabs/lixi/tier"
	types "github.com/seallabs/lixi/types/v1"
)

const defaultConfigPath = "./config/config.toml"

const envelopeFront = `
      ┌───────────────┐
      │   ░░░░░░░░░   │
      │   ░ 🧧 LÌ ░   │
      │   ░  XÌ  ░    │
      │   ░░░░░░░░░   │
      └───────────────┘
        Tap to open
`

const envelopeBack = `
      ┌───────────────┐
      │      ╱╲       │
      │     ╱  ╲      │
      │    ( $$ )     │
      │     ╲  ╱      │
      └──────╲╱───────┘
     Almost there...
`

func main() {
	conf := flag.String("conf", defaultConfigPath, "conf file path")
	code := flag.String("code", "", "participant code; prompts when empty")
	outDir := flag.String("out", "", "override receipt export directory")
	drawFortune := flag.Bool("fortune", false, "draw a fortune and exit")
	flag.Parse()

	c, err := config.UnmarshalConfig(*conf)
	if err != nil {
		// running without a config file is the supported demo setup
		c = config.DefaultConfig()
	}
	if *outDir != "" {
		c.Export.Dir = *outDir
	}

	if err := xzap.SetUp(c.Log.Level); err != nil {
		panic(err)
	}
	defer xzap.Sync()

	if *drawFortune {
		f := fortune.Draw(rand.New(rand.NewSource(time.Now().UnixNano())))
		fmt.Printf("🎋 [%s] %s\n", f.Type, f.Message)
		return
	}

	var sim *claim.Simulator
	if c.Claim.Endpoint == "" {
		sim = claim.NewSimulator(c.Simulate)
	}
	client := claim.NewClient(c.Claim, sim)

	session := reveal.NewSession(client, reveal.WithCelebration(func(res types.ClaimResult) {
		fmt.Printf("\n   🎉🧧✨  %s — Happy New Year!  ✨🧧🎉\n", receipt.FormatAmount(res.Amount))
	}))

	in := bufio.NewReader(os.Stdin)
	interactive := *code == ""
	ctx := context.Background()

	for {
		id := *code
		if interactive {
			fmt.Print("Enter your code or company email: ")
			line, err := in.ReadString('\n')
			if err != nil {
				return
			}
			id = strings.TrimSpace(line)
		}

		fmt.Println("Checking...")
		res, err := session.Submit(ctx, id)
		if err != nil {
			panic(err)
		}
		if res.Status.Claimable() {
			break
		}

		fmt.Printf("✗ %s\n\n", session.FailMessage())
		if !interactive {
			os.Exit(1)
		}
	}

	pause := func(prompt string) {
		if interactive {
			fmt.Print(prompt)
			_, _ = in.ReadString('\n')
		}
	}

	fmt.Print(envelopeFront + "\n")
	pause("Press Enter to flip the envelope...")
	if _, err := session.Advance(); err != nil {
		panic(err)
	}
	fmt.Print(envelopeBack + "\n")
	pause("Press Enter to open it...")
	if _, err := session.Advance(); err != nil {
		panic(err)
	}

	res, ok := session.Result()
	if !ok {
		panic("no claim result after reveal")
	}
	printReceipt(res)

	exporter := receipt.NewExporter(c.Export)
	fb, err := exporter.Export(ctx, res, tier.Resolve(res.Amount))
	if err != nil {
		// the terminal receipt above stays visible for manual capture
		fmt.Printf("✗ %v\n", err)
		return
	}
	if fb == nil {
		fmt.Println("Receipt shared.")
		return
	}
	defer fb.Close()

	if !interactive {
		path, err := fb.Download()
		if err != nil {
			fmt.Printf("✗ %v\n", err)
			return
		}
		fmt.Printf("Receipt saved to %s\n", path)
		return
	}

	for {
		fmt.Print("[d]ownload  [c]opy to clipboard  [q]uit: ")
		line, err := in.ReadString('\n')
		if err != nil {
			return
		}
		switch strings.TrimSpace(strings.ToLower(line)) {
		case "d":
			path, err := fb.Download()
			if err != nil {
				fmt.Printf("✗ %v\n", err)
				continue
			}
			fmt.Printf("Saved to %s\n", path)
		case "c":
			if err := fb.CopyClipboard(); err != nil {
				fmt.Printf("✗ %v\n", err)
				continue
			}
			fmt.Println("Copied.")
		case "q", "":
			return
		}
	}
}

func printReceipt(res types.ClaimResult) {
	t := tier.Resolve(res.Amount)
	stamp := "APPROVED"
	if res.Status == types.StatusAlreadyClaimed {
		stamp = "REISSUED (already claimed earlier)"
	}

	fmt.Println("  ──────────  LUCKY MONEY RECEIPT  ──────────")
	fmt.Printf("   Code        %s\n", res.Identifier)
	fmt.Printf("   Amount      %s\n", receipt.FormatAmount(res.Amount))
	fmt.Printf("   Receipt ID  %s\n", res.ReceiptID)
	fmt.Printf("   Time        %s\n", res.Timestamp)
	fmt.Printf("   Stamp       %s\n", stamp)
	fmt.Printf("\n   « %s »\n   %s\n", t.Title, t.Message)
	fmt.Println("  ───────────────────────────────────────────")
}
