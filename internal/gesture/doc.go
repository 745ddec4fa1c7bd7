// Package gesture converts raw pointer drags into discrete slide
// navigation decisions using shared distance and velocity thresholds, and
// exposes the running drag offset for the visual pull affordance. It also
// holds the drag suspension reason while a drag is in flight so autoplay
// never advances mid-gesture.
package gesture
