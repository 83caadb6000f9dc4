// Package notion provides typed data models for the Notion API.
//
// The package mirrors the JSON resources exposed by the Notion REST API
// (https://developers.notion.com/reference): pages, blocks, databases,
// property values and schema configurations, rich text, users, files,
// comments, and the paginated list envelope. It covers three concerns:
//   - Decoding API payloads into typed structs
//   - Encoding typed structs back into API-shaped JSON
//   - Field-level validation via the Validatable interface
//
// It deliberately does not talk to the API: no HTTP transport,
// authentication, pagination loops, or rate limiting. Pair it with any
// HTTP client.
//
// Union types (rich text, blocks, property values, parents, icons) use a
// Type discriminator field plus one payload field per variant; only the
// payload matching Type is populated. Validate reports payloads that
// disagree with the discriminator.
package notion
