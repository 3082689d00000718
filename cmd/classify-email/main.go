package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	// Register charset decoders for non-UTF-8 message bodies
	_ "github.com/emersion/go-message/charset"
	gomail "github.com/emersion/go-message/mail"
	"go.uber.org/zap"

	"github.com/seabroker/email-classifier/internal/adapters/artifacts"
	"github.com/seabroker/email-classifier/internal/core"
	"github.com/seabroker/email-classifier/internal/inference"
	"github.com/seabroker/email-classifier/internal/logging"
)

var (
	inputFile    = flag.String("file", "", "Input email file (use stdin if not specified)")
	artifactsDir = flag.String("artifacts", "./artifacts", "Directory holding the trained model artifacts")
	verbose      = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog      = flag.Bool("json-log", false, "Output logs in JSON format")
)

func main() {
	flag.Parse()

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Read email from file or stdin
	var emailReader io.Reader
	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			logger.Fatal("Failed to open input file", zap.Error(err), zap.String("file", *inputFile))
		}
		defer file.Close()
		emailReader = file
		logger.Info("Reading email from file", zap.String("file", *inputFile))
	} else {
		emailReader = os.Stdin
		logger.Info("Reading email from stdin")
	}

	email, err := parseEmail(emailReader)
	if err != nil {
		logger.Fatal("Failed to parse email", zap.Error(err))
	}

	// Load the trained bundle
	store, err := artifacts.NewFSStore(*artifactsDir, logger)
	if err != nil {
		logger.Fatal("Failed to open artifact store", zap.Error(err))
	}
	bundle, err := store.Load(context.Background())
	if err != nil {
		logger.Fatal("Failed to load trained model", zap.Error(err), zap.String("artifacts", *artifactsDir))
	}

	// Print email summary
	fmt.Printf("\n=== Email Summary ===\n")
	fmt.Printf("From: %s\n", email.Sender)
	fmt.Printf("Subject: %s\n", email.Subject)
	fmt.Printf("Body length: %d bytes\n", len(email.Body))
	fmt.Printf("\n")

	fmt.Printf("=== Analysis ===\n")
	fmt.Printf("Model type: %s\n", bundle.Metadata.ModelType)
	fmt.Printf("Training accuracy: %.3f\n", bundle.Metadata.Accuracy)

	startTime := time.Now()
	predictor := inference.NewPredictor(bundle)
	prediction, err := predictor.Predict(*email)
	if err != nil {
		logger.Fatal("Failed to classify email", zap.Error(err))
	}

	// Print results
	fmt.Printf("\n=== Results ===\n")
	fmt.Printf("Prediction: %s\n", prediction.Label)
	fmt.Printf("Confidence: CARGO=%.2f, VESSEL=%.2f\n", prediction.Probs[0], prediction.Probs[1])
	fmt.Printf("Processing time: %v\n", time.Since(startTime))
}

// parseEmail extracts sender, subject and the first inline text part from an
// RFC 822 message.
func parseEmail(r io.Reader) (*core.EmailRecord, error) {
	mr, err := gomail.CreateReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail reader: %w", err)
	}

	email := &core.EmailRecord{}
	if subject, err := mr.Header.Subject(); err == nil {
		email.Subject = subject
	}
	if addrs, err := mr.Header.AddressList("From"); err == nil && len(addrs) > 0 {
		email.Sender = addrs[0].Address
	}

	var body strings.Builder
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read message part: %w", err)
		}
		if _, ok := part.Header.(*gomail.InlineHeader); ok {
			if _, err := io.Copy(&body, part.Body); err != nil {
				return nil, fmt.Errorf("failed to read message body: %w", err)
			}
		}
	}
	email.Body = body.String()

	return email, nil
}
