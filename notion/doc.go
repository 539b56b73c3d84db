// Package notion provides a client for fetching a single page from the Notion API.
//
// A fetch has three steps: NewRequest builds the GET request with the bearer
// token and the Notion-Version header, a Transport sends it, and Classify maps
// the outcome onto either a Response or an *APIError.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := notion.NewClient(os.Getenv("NOTION_API_KEY"), logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	page, err := client.GetPage(context.Background(), pageID)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(page.Data)
//
// # Error Handling
//
// Every failure is an *APIError carrying one of a closed set of kinds:
//
//   - KindMissingCredential: no API key, nothing was sent
//   - KindConnectionFailed: no response was received
//   - KindUnauthorized: HTTP 401 or 403
//   - KindNotFound: HTTP 404
//   - KindServerError: HTTP 5xx
//   - KindInvalidResponse: unreadable 2xx body, or any other status
//
// The package-level sentinels match by kind:
//
//	if errors.Is(err, notion.ErrNotFound) {
//		// Handle missing page
//	}
//
// # Normalization
//
// A 2xx body always produces a Response. JSON bodies are pretty-printed with
// two-space indentation; anything else is returned byte-for-byte.
package notion
