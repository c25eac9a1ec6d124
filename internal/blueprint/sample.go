package blueprint

// Sample is the blueprint written by xhtml init.
const Sample = `# Document blueprint. Every content item is a string, a nested element,
# a markdown item, or null (clears what came before).
head:
  content:
    - tag: title
      content: Hello
    - tag: meta
      attrs:
        http-equiv: Content-Type
        content: text/html; charset=utf-8
body:
  content:
    - tag: h1
      content: Hello
    - markdown: |
        Edit *page.yaml* and run **xhtml build**.
`
