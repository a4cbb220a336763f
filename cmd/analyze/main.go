// Command analyze is a test client for the gRPC deployment.
package main

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/imagelens/product-analyzer/productanalyzerpb"
)

// Historical default: older test tooling dialed 50051 while the server
// itself listens on 50071. Kept as a flag instead of silently unified.
const defaultAddr = "localhost:50051"

var (
	addr    string
	timeout time.Duration
)

func main() {
	root := &cobra.Command{
		Use:   "analyze",
		Short: "Test client for the product analyzer gRPC service",
	}
	root.PersistentFlags().StringVar(&addr, "addr", defaultAddr, "server address")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "request timeout")

	root.AddCommand(
		&cobra.Command{
			Use:   "image <path>",
			Short: "Generate a listing from a local image file",
			Args:  cobra.ExactArgs(1),
			RunE:  runImage,
		},
		&cobra.Command{
			Use:   "url <image-url>",
			Short: "Generate a listing from a remote image URL",
			Args:  cobra.ExactArgs(1),
			RunE:  runURL,
		},
		&cobra.Command{
			Use:   "health",
			Short: "Check service liveness",
			Args:  cobra.NoArgs,
			RunE:  runHealth,
		},
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func dial() (productanalyzerpb.ProductAnalyzerClient, *grpc.ClientConn, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	return productanalyzerpb.NewProductAnalyzerClient(conn), conn, nil
}

func runImage(cmd *cobra.Command, args []string) error {
	imagePath := args[0]
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(imagePath))
	if contentType == "" {
		contentType = "image/jpeg"
	}

	client, conn, err := dial()
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.GenerateFromImage(ctx, &productanalyzerpb.ImageRequest{
		Image:       data,
		Filename:    filepath.Base(imagePath),
		ContentType: contentType,
	})
	if err != nil {
		return err
	}

	printListing(resp)
	return nil
}

func runURL(cmd *cobra.Command, args []string) error {
	client, conn, err := dial()
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.GenerateFromImageUrl(ctx, &productanalyzerpb.ImageUrlRequest{
		ImageUrl: args[0],
	})
	if err != nil {
		return err
	}

	printListing(resp)
	return nil
}

func runHealth(cmd *cobra.Command, args []string) error {
	client, conn, err := dial()
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	resp, err := client.HealthCheck(ctx, &productanalyzerpb.HealthCheckRequest{})
	if err != nil {
		return err
	}

	fmt.Printf("Status:  %s\nService: %s\n", resp.GetStatus(), resp.GetService())
	return nil
}

func printListing(resp *productanalyzerpb.ImageResponse) {
	fmt.Printf("Title: %s\n\n", resp.GetTitle())
	fmt.Printf("Description:\n%s\n", resp.GetDescription())
	if resp.GetSearchInfo() != "" {
		fmt.Printf("\nSearch info:\n%s\n", resp.GetSearchInfo())
	}
}
