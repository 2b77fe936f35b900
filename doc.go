// Package mathcore converts LaTeX math notation into a MathML-shaped
// abstract syntax tree.
//
// Current caveats
//  - Concurrency: ConvertWithLocalCounter is safe to call concurrently
//    with itself and with ConvertWithGlobalCounter on the same
//    Converter. ConvertWithGlobalCounter and ResetGlobalCounter
//    serialize with each other and with every other global-counter
//    call on that instance.
//  - Scope: this package produces an AST, not MathML text. A tree
//    walker that writes XML is a separate, not-included concern.
//
// A tiny example:
//
//     conv, err := mathcore.New()
//     if err != nil {
//         panic(err)
//     }
//     ast, err := conv.ConvertWithLocalCounter(`\frac{1}{2}`, mathcore.DisplayInline)
//     if err != nil {
//         panic(err)
//     }
//     root := ast.Arena.Get(ast.Root)
//     fmt.Println(root.Kind) // Output: 18 (NodeRow)
//
package mathcore
