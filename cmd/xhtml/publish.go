package main

import (
	"github.com/spf13/cobra"

	"github.com/cyb3rnet/xhtml/internal/publish"
	"github.com/cyb3rnet/xhtml/pkg/render"
)

func publishCmd(flags *globalFlags) *cobra.Command {
	var (
		bucket string
		key    string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the document to S3",
		Long: `Build and check the document, then upload it to an S3-compatible bucket.

The upload is skipped when the stored object already has the same
BLAKE3 checksum. Credentials are read from AWS_ACCESS_KEY_ID,
AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.

Examples:
  xhtml publish
  xhtml publish --bucket=my-site --key=docs/index.html
  xhtml publish --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if bucket != "" {
				cfg.Publish.Bucket = bucket
			}
			objectKey := cfg.ObjectKey()
			if key != "" {
				objectKey = key
			}

			d, err := assemble(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			doc, err := d.Generate()
			if err != nil {
				return err
			}
			if _, err := render.CheckWellFormed(doc); err != nil {
				return err
			}
			body, err := encode(d)
			if err != nil {
				return err
			}

			client := publish.NewClient(publish.ClientOptions{
				Region:    cfg.Publish.Region,
				Endpoint:  cfg.Publish.Endpoint,
				PathStyle: cfg.Publish.PathStyle,
			})
			p := publish.New(client, cfg.Publish.Bucket, publish.WithForce(force))

			contentType := d.Renderer().ContentType(cfg.Preview.ContentType)
			result, err := p.Publish(cmd.Context(), objectKey, body, contentType)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.Skipped {
				success(out, "s3://%s/%s is up to date", result.Bucket, result.Key)
				return nil
			}
			success(out, "Published s3://%s/%s (%s)", result.Bucket, result.Key, formatBytes(int64(result.Bytes)))
			info(out, "blake3 %s", result.Checksum)
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Destination bucket (default from xhtml.json)")
	cmd.Flags().StringVar(&key, "key", "", "Object key, prefix included (default from xhtml.json)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Upload even when unchanged")

	return cmd
}
