// Package classify turns a cleaned, single-substream point sequence into a
// Path: an alternating sequence of Stop and Route elements.
//
// Grounded on original_source/src/utility/stop_detector.rs,
// motion_detector.rs, and src/graph/{path.rs,path_element.rs,path_builder.rs}.
package classify
