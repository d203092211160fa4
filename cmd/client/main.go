package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ErniyazCode/kazproperty/internal/client/ledger"
	"github.com/ErniyazCode/kazproperty/internal/client/pinning"
	"github.com/ErniyazCode/kazproperty/internal/client/store"
	"github.com/ErniyazCode/kazproperty/internal/reconcile"
	"github.com/ErniyazCode/kazproperty/pkg/config"
)

const usage = `Usage: client <command> [args]

Commands:
  properties                 list properties (store -> ledger -> mock)
  property <id>              show one property
  users                      list users
  user <address>             show one user
  pin <file> [file...]       upload files to the pinning gateway
  buy <id>                   buy a property (needs LEDGER_PRIVATE_KEY)
  login <username> <pass>    obtain an admin session
`

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	storeClient := store.New(cfg.StoreBaseURL)

	// The ledger is optional: without a reachable provider the reconciler
	// simply skips that source.
	var ledgerClient reconcile.Ledger
	if client, err := ledger.New(cfg.LedgerRPCURL, cfg.ContractAddress); err != nil {
		log.Printf("Ledger unavailable, continuing without it: %v", err)
	} else {
		if key := os.Getenv("LEDGER_PRIVATE_KEY"); key != "" {
			if err := client.Connect(key); err != nil {
				log.Fatalf("Failed to connect ledger account: %v", err)
			}
		}
		ledgerClient = client
	}

	r := reconcile.New(storeClient, ledgerClient)
	ctx := context.Background()

	switch args[0] {
	case "properties":
		result := r.Properties(ctx)
		if result.Err != nil {
			log.Fatalf("Failed to load properties: %v", result.Err)
		}
		fmt.Printf("Source: %s\n", result.Source)
		printJSON(result.Data)

	case "property":
		id := parseID(args, 1)
		result := r.Property(ctx, id)
		if result.Err != nil {
			log.Fatalf("Failed to load property %d: %v", id, result.Err)
		}
		fmt.Printf("Source: %s\n", result.Source)
		printJSON(result.Data)

	case "users":
		result := r.Users(ctx)
		if result.Err != nil {
			log.Fatalf("Failed to load users: %v", result.Err)
		}
		fmt.Printf("Source: %s\n", result.Source)
		printJSON(result.Data)

	case "user":
		if len(args) < 2 {
			log.Fatal("user requires an address")
		}
		result := r.User(ctx, args[1])
		if result.Err != nil {
			log.Fatalf("Failed to load user %s: %v", args[1], result.Err)
		}
		fmt.Printf("Source: %s\n", result.Source)
		printJSON(result.Data)

	case "pin":
		if len(args) < 2 {
			log.Fatal("pin requires at least one file")
		}
		pinner := pinning.NewWithURLs(cfg.PinataJWT, "https://api.pinata.cloud", cfg.PinataGateway)

		files := make([]pinning.File, 0, len(args)-1)
		handles := make([]*os.File, 0, len(args)-1)
		for _, path := range args[1:] {
			f, err := os.Open(path)
			if err != nil {
				log.Fatalf("Failed to open %s: %v", path, err)
			}
			handles = append(handles, f)
			files = append(files, pinning.File{Name: filepath.Base(path), Content: f})
		}

		results := pinner.UploadFiles(ctx, files)
		for _, f := range handles {
			f.Close()
		}
		for _, res := range results {
			if res.Err != nil {
				fmt.Printf("%s: failed: %v\n", res.Name, res.Err)
				continue
			}
			fmt.Printf("%s: %s\n", res.Name, res.Result.URL)
		}

	case "buy":
		id := parseID(args, 1)
		result := r.Property(ctx, id)
		if result.Err != nil {
			log.Fatalf("Failed to load property %d: %v", id, result.Err)
		}
		property := result.Data
		transaction, err := r.BuyProperty(ctx, &property)
		if err != nil {
			log.Fatalf("Purchase failed: %v", err)
		}
		printJSON(transaction)

	case "login":
		if len(args) < 3 {
			log.Fatal("login requires a username and a password")
		}
		session, err := r.AdminLogin(ctx, args[1], args[2])
		if err != nil {
			log.Fatalf("Login failed: %v", err)
		}
		fmt.Printf("Token valid until %s\n", session.ExpiresAt.Format("2006-01-02 15:04:05"))

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func parseID(args []string, index int) int64 {
	if len(args) <= index {
		log.Fatal("missing property id")
	}
	id, err := strconv.ParseInt(args[index], 10, 64)
	if err != nil {
		log.Fatalf("Invalid property id %q", args[index])
	}
	return id
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
	fmt.Println(string(out))
}
