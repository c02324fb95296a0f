// Package mcp exposes tool descriptors over the Model Context Protocol.
//
// A [tool.Registry] can be served to MCP clients such as desktop assistants,
// and the tools of a remote MCP server can be imported as strict
// descriptors through [RemoteRegistry]:
//
//	registry := tool.NewRegistry().Add(
//	    tool.Func("get_weather", "Fetch the weather for a given location.", weatherHandler),
//	)
//
//	if err := mcp.ServeStdio(registry); err != nil {
//	    log.Fatal(err)
//	}
//
// Input schemas arriving from a remote server are run through the strict
// normalizer, so imported tools can be sent to strict function-calling
// endpoints unchanged.
package mcp
