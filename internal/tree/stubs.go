package tree

import "strings"

// DefaultContent returns the templated stub written into a newly created
// file node. The template is picked by extension (or well-known filename)
// and is deterministic: the same name always produces the same content.
func DefaultContent(name string) string {
	switch {
	case name == "Dockerfile":
		return "FROM python:3.11-slim\n\nWORKDIR /app\nCOPY . .\nRUN pip install -r requirements.txt\n\nCMD [\"python\", \"app.py\"]\n"
	case strings.HasSuffix(name, ".py"):
		title := strings.TrimSuffix(name, ".py")
		return "# " + name + "\n\ndef main():\n    print(\"Hello from " + title + "\")\n\n\nif __name__ == \"__main__\":\n    main()\n"
	case strings.HasSuffix(name, ".txt"):
		title := strings.TrimSuffix(name, ".txt")
		return "# " + title + "\n"
	case strings.HasSuffix(name, ".md"):
		title := strings.TrimSuffix(name, ".md")
		return "# " + title + "\n\nOpis projektu.\n"
	case strings.HasSuffix(name, ".json"):
		title := strings.TrimSuffix(name, ".json")
		return "{\n  \"name\": \"" + title + "\"\n}\n"
	default:
		return "# " + name + "\n"
	}
}
