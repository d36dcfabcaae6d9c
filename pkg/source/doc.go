/*
Package source loads configuration files into the map form the validation
engine consumes.

Two formats are supported: JSON objects and dotenv files. The format is
detected from the file name, falling back to sniffing the content:

	file, err := source.Load("config/app.json")
	if err != nil {
		return err
	}
	result := validator.Validate(file.Values, s)

Dotenv values are plain strings on disk, so unambiguous boolean and
numeric literals are upgraded to their typed form during parsing. That
keeps typed schema rules and the numeric security checks meaningful for
dotenv sources:

	PORT=8080        → 8080 (number)
	DEBUG=true       → true (boolean)
	GREETING=hello   → "hello" (string)

Keys are never renamed or case-folded in either format.
*/
package source
