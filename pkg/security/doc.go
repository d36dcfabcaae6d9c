/*
Package security holds the credential heuristics shared by the lint rules
and the log redactor.

Two questions come up in several places in the engine:

  - Does this key name conventionally hold a credential?
  - Is this literal value an acceptably strong secret?

Both answers are heuristic and operate purely on names and literals; the
package never touches the network or the filesystem.

# Secret Key Detection

LooksLikeSecretKey matches a key name against a fixed list of credential
naming conventions, case-insensitively and anywhere in the name:

	security.LooksLikeSecretKey("DB_PASSWORD")   // true
	security.LooksLikeSecretKey("api-key")       // true
	security.LooksLikeSecretKey("app_name")      // false

# Password Strength

PasswordStrength classifies a candidate secret value and names the condition
that makes it weak:

	if weak, reason := security.PasswordStrength(value); weak {
		fmt.Println("weak password:", reason)
	}

The pattern list and the weak-password dictionary are part of the tool's
documented behavior, so changing either changes which findings users see.
*/
package security
