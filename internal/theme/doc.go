// Package theme manages the editor color themes: the built-in default theme and
// the JSON theme files kept in <local-app-data>/AGS/Themes. It tracks which theme
// is selected, persists the selection through a preferences store, imports new
// theme files and reloads the list when the directory changes.
package theme
