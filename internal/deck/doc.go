// Package deck loads slide manifests.
//
// A manifest is a YAML file with a title and an ordered slide list. Slide
// content is opaque to navigation: the presenter reads titles, bodies,
// image paths and links, while the engine only ever sees the count. Ids
// are stable across loads when the manifest pins them and generated (ULID)
// when it does not.
//
//	title: Launch review
//	slides:
//	  - id: intro
//	    title: Welcome
//	    body: |
//	      One paragraph per slide.
//	  - title: Numbers
//	    image: charts/q3.png
//	    link: https://example.com/q3
//
// Relative image paths resolve against the manifest's directory.
package deck
