package mcpserver

// CompositionFormatContract describes the canonical composition JSON
// format that LLM consumers should follow when calling
// compile_composition.
const CompositionFormatContract = `# Dagaz Composition Format Contract

Every composition passed to ` + "`" + `compile_composition` + "`" + ` MUST be a single JSON
document with this structure.

## Structure

` + "```" + `json
{
  "name": "My App",                 // REQUIRED – becomes the root component name
  "description": "What it does",    // OPTIONAL
  "version": "1.0.0",               // OPTIONAL
  "targets": ["web", "ios"],        // OPTIONAL – default platforms when none are requested
  "root": {                         // the instance tree (preferred)
    "id": "root",
    "capsuleId": "stack",
    "props": { "gap": 2 },
    "children": [
      { "id": "hello", "capsuleId": "text", "props": { "content": "Hello" } }
    ],
    "slots": {
      "footer": [
        { "id": "cta", "capsuleId": "button", "props": { "label": "Go" } }
      ]
    }
  },
  "theme": {
    "colors": { "primary": "#3B82F6", "text": { "primary": "#111827" } },
    "typography": { "fontFamily": "Inter", "baseSize": 16 },
    "spacing": 4,
    "radius": 8
  }
}
` + "```" + `

## Rules

1. **` + "`" + `name` + "`" + ` is required.** It is turned into a language identifier for the
   root component, so prefer something word-like ("Checkout Flow").
2. **Every instance needs ` + "`" + `id` + "`" + ` and ` + "`" + `capsuleId` + "`" + `.** The ` + "`" + `id` + "`" + ` is unique within
   the composition and is echoed back in diagnostics; ` + "`" + `capsuleId` + "`" + ` must name a
   capsule from ` + "`" + `list_capsules` + "`" + `.
3. **Platforms** are ` + "`" + `web` + "`" + `, ` + "`" + `ios` + "`" + ` and ` + "`" + `android` + "`" + `. A capsule missing a template
   for a platform produces an error diagnostic and its subtree is skipped;
   siblings still compile.
4. **Colors** are hex strings (` + "`" + `#RRGGBB` + "`" + `, leading ` + "`" + `#` + "`" + ` optional). Malformed
   values fall back to a neutral color rather than failing the compile.
5. **Theme is optional.** Missing tokens get built-in defaults, so a bare
   composition still compiles.
6. **` + "`" + `slots` + "`" + ` vs ` + "`" + `children` + "`" + `:** children fill the capsule's main content area;
   slots fill named regions when the capsule defines them (e.g. a card's
   ` + "`" + `header` + "`" + `). Slot content for undefined regions is appended after children.
7. Instead of ` + "`" + `root` + "`" + ` you may pass a flat ` + "`" + `capsules` + "`" + ` array of instances; they
   compile as top-level siblings in order.

## Reading results

` + "`" + `compile_composition` + "`" + ` returns one result per platform with ` + "`" + `success` + "`" + `,
` + "`" + `files` + "`" + ` (path + content), ` + "`" + `errors` + "`" + `/` + "`" + `warnings` + "`" + ` (omitted when empty) and
` + "`" + `stats` + "`" + `. A failed platform does not affect the others, and failed results
may still carry the files that compiled before the failure.
`
