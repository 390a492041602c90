// Package writers turns report tables into output files.
//
// Design:
//   - Writers own all serialization knowledge (delimited text, xlsx).
//   - Report stays layout-only; Pipeline stays orchestration-only.
//   - Dispatch is by output file extension through the registry.
package writers
