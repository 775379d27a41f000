// Command floosakctl exercises the Floosak merchant API from the terminal:
// run the key flow once, export FLOOSAK_TOKEN, then drive payments.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	floosak "github.com/floosak/floosak-go"
	"github.com/floosak/floosak-go/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := config.Load()
	if cfg.Log.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	opts := []floosak.Option{floosak.WithTimeout(cfg.API.Timeout)}
	if cfg.API.Token != "" {
		opts = append(opts, floosak.WithToken(cfg.API.Token))
	}
	if cfg.Log.Debug {
		opts = append(opts, floosak.WithLogger(log.Logger))
	}
	client := floosak.New(cfg.API.BaseURL, cfg.API.Phone, cfg.API.ShortCode, opts...)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, client, os.Args[1], os.Args[2:]); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func run(ctx context.Context, client *floosak.Client, command string, args []string) error {
	switch command {
	case "request-key":
		resp, err := client.RequestKey(ctx)
		if err != nil {
			return err
		}
		return printJSON(resp)

	case "verify-key":
		fs := flag.NewFlagSet("verify-key", flag.ExitOnError)
		requestID := fs.Int64("request-id", 0, "request id from request-key")
		otp := fs.String("otp", "", "OTP received via SMS")
		fs.Parse(args)
		resp, err := client.VerifyKey(ctx, *requestID, *otp)
		if err != nil {
			return err
		}
		if tok, ok := client.Token(); ok {
			log.Info().Msgf("token stored; export FLOOSAK_TOKEN=%s to reuse it", tok)
		}
		return printJSON(resp)

	case "purchase":
		fs := flag.NewFlagSet("purchase", flag.ExitOnError)
		wallet := fs.Int64("wallet", 0, "merchant source wallet id")
		requestID := fs.String("request-id", "", "merchant reference for this payment")
		phone := fs.String("phone", "", "customer phone number")
		amount := fs.Int64("amount", 0, "amount to collect")
		purpose := fs.String("purpose", "", "payment purpose shown to the customer")
		fs.Parse(args)
		resp, err := client.PurchaseRequest(ctx, floosak.PurchaseRequestPayload{
			SourceWalletID: *wallet,
			RequestID:      *requestID,
			TargetPhone:    *phone,
			Amount:         *amount,
			Purpose:        *purpose,
		})
		if err != nil {
			return err
		}
		return printJSON(resp)

	case "confirm":
		fs := flag.NewFlagSet("confirm", flag.ExitOnError)
		purchaseID := fs.Int64("purchase-id", 0, "pending purchase id")
		otp := fs.String("otp", "", "customer OTP")
		fs.Parse(args)
		resp, err := client.PurchaseConfirm(ctx, floosak.PurchaseConfirmPayload{
			PurchaseID: *purchaseID,
			OTP:        *otp,
		})
		if err != nil {
			return err
		}
		return printJSON(resp)

	case "refund":
		fs := flag.NewFlagSet("refund", flag.ExitOnError)
		transactionID := fs.String("transaction-id", "", "settled transaction id")
		requestID := fs.String("request-id", "", "merchant reference for this refund")
		amount := fs.Int64("amount", 0, "amount to refund")
		fs.Parse(args)
		resp, err := client.Refund(ctx, floosak.RefundPayload{
			TransactionID: *transactionID,
			RequestID:     *requestID,
			Amount:        *amount,
		})
		if err != nil {
			return err
		}
		return printJSON(resp)

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: floosakctl <command> [flags]

commands:
  request-key   send a login OTP to the merchant phone
  verify-key    exchange the OTP for a bearer token
  purchase      initiate a P2MCL payment
  confirm       confirm a pending purchase with the customer OTP
  refund        refund a settled transaction

configuration via env or .env: FLOOSAK_BASE_URL, FLOOSAK_PHONE,
FLOOSAK_SHORT_CODE, FLOOSAK_TOKEN, FLOOSAK_TIMEOUT_SEC, FLOOSAK_DEBUG`)
}
