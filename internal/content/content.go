// Package content implements the content-block pipeline shared by the admin
// editor and the public renderer: the default content catalog that seeds new
// page documents, and the editing operations applied to a page's block array.
//
// All operations are pure functions over a block slice. Persistence is the
// service layer's concern; nothing here touches the store.
package content
