// Package hxassets serves the small client script that attaches anti-forgery
// tokens to htmx requests.
//
// The script reads the token set from htmx.config.antiForgery (filled from the
// htmx-config meta tag), refreshes it after boosted navigations and adds it to
// every non-GET request, as a header when a header name is configured or as a
// form parameter otherwise.
//
// The default URL embeds the SHA-1 of the script, so responses are cached for
// a year:
//
//	assets, err := hxassets.New()
//	if err != nil {
//		return err
//	}
//	assets.Mount(router)
//
//	// in a layout
//	@assets.ScriptTag(false)
//
// Append "?debug" to the URL (or use DebugPath) to get the readable source.
package hxassets
