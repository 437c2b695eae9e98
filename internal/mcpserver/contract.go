package mcpserver

// SnippetFormatContract describes the snippet file format for LLM consumers
// of the make_snippet tool.
const SnippetFormatContract = `# Snippet Format

Every snippet file has exactly this layout; the four values are inserted verbatim:

` + "```" + `xml
<snippet>
<content><![CDATA[
BODY
]]></content>
<tabTrigger>TRIGGER</tabTrigger>
<description>DESCRIPTION</description>
<scope>SCOPE</scope>
</snippet>
` + "```" + `

## Rules

1. **File names** match ` + "`" + `^\w+\.sublime-snippet$` + "`" + `: letters, digits and underscores,
   then the fixed ` + "`" + `.sublime-snippet` + "`" + ` extension. No spaces, no directories.
2. **Body** may use snippet fields (` + "`" + `$1` + "`" + `, ` + "`" + `${2:default}` + "`" + `, ` + "`" + `$0` + "`" + `) and variables
   (` + "`" + `$SELECTION` + "`" + `, ` + "`" + `$TM_FILENAME` + "`" + `, ...). A literal dollar sign is written ` + "`" + `\$` + "`" + `.
   When the server escapes dollars (the default) every ` + "`" + `$` + "`" + ` you send is escaped for you,
   so fields cannot be used.
3. **Body must not contain** ` + "`" + `]]>` + "`" + `, which would end the CDATA section.
4. **Trigger, description and scope** are not XML-escaped; avoid ` + "`" + `<` + "`" + ` and ` + "`" + `&` + "`" + `.
5. **Scope** is a selector such as ` + "`" + `source.python` + "`" + ` or ` + "`" + `source.js, source.ts` + "`" + `.
   Leave it empty to offer the snippet everywhere.
6. Existing files are only replaced with ` + "`" + `overwrite=true` + "`" + `.
`
