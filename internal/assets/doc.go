// Package assets provides the CSS styles and HTML page templates used to
// assemble the final KaTeX-enabled document. Assets can be loaded from
// embedded files or from a custom directory on disk.
//
// Layout expected by both loaders:
//
//	styles/<name>.css
//	templates/<name>.html
//
// Names never include an extension or path components; ValidateAssetName
// rejects anything that could escape the asset directory.
package assets
