// Package config provides configuration parsing for xhtml projects.
//
// The configuration is stored in xhtml.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "lang": "en",
//	  "encoding": "utf-8",
//	  "doctype": "xhtml1-strict",
//	  "blueprint": "page.yaml",
//	  "output": "dist/index.html",
//	  "preview": {
//	    "host": "localhost",
//	    "port": 4000,
//	    "watch": true,
//	    "debounce": "200ms",
//	    "contentType": "text/html"
//	  },
//	  "publish": {
//	    "bucket": "my-site",
//	    "prefix": "docs/",
//	    "key": "index.html",
//	    "region": "eu-west-1"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	d, err := document.New(cfg.Params())
package config
