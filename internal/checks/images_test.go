package checks

import (
	"testing"

	"github.com/Bandit-AI/seo-auditor/internal/model"
)

// TestImagesCheckMixedAltStates tests the three alt attribute states on one
// page: absent attribute, empty attribute, and valid text.
func TestImagesCheckMixedAltStates(t *testing.T) {
	t.Parallel()

	doc := mustDocument(t, "https://example.com", `<html><body>
		<img src="a.png">
		<img src="b.png" alt="">
		<img src="c.png" alt="a brown dog">
	</body></html>`)
	payload, findings := (&ImagesCheck{}).Run(doc)

	result := payload.(model.ImagesResult)
	if result.Total != 3 || result.MissingAlt != 1 || result.EmptyAlt != 1 {
		t.Errorf("got payload %+v, expected total=3 missing_alt=1 empty_alt=1", result)
	}

	if got := severityCount(findings, model.SeverityCritical); got != 1 {
		t.Errorf("got %d critical findings, expected 1", got)
	}
	if got := severityCount(findings, model.SeverityWarning); got != 1 {
		t.Errorf("got %d warning findings, expected 1", got)
	}
	if !hasMessage(findings, "1 images missing alt attribute") {
		t.Errorf("missing-alt message absent: %+v", findings)
	}
	if !hasMessage(findings, "1 images have empty alt text") {
		t.Errorf("empty-alt message absent: %+v", findings)
	}
}

// TestImagesCheckNoImages tests that a page without images records nothing.
func TestImagesCheckNoImages(t *testing.T) {
	t.Parallel()

	doc := mustDocument(t, "https://example.com", `<html><body><p>text only</p></body></html>`)
	payload, findings := (&ImagesCheck{}).Run(doc)

	result := payload.(model.ImagesResult)
	if result.Total != 0 {
		t.Errorf("got total %d, expected 0", result.Total)
	}
	if len(findings) != 0 {
		t.Errorf("got %d findings, expected none: %+v", len(findings), findings)
	}
}

// TestImagesCheckAllGood tests the passed case.
func TestImagesCheckAllGood(t *testing.T) {
	t.Parallel()

	doc := mustDocument(t, "https://example.com", `<html><body>
		<img src="a.png" alt="first">
		<img src="b.png" alt="second">
	</body></html>`)
	payload, findings := (&ImagesCheck{}).Run(doc)

	result := payload.(model.ImagesResult)
	if result.Total != 2 || result.MissingAlt != 0 || result.EmptyAlt != 0 {
		t.Errorf("got payload %+v, expected 2 clean images", result)
	}
	if !hasMessage(findings, "All 2 images have alt text") {
		t.Errorf("expected passed finding, got %+v", findings)
	}
	if got := len(findings); got != 1 {
		t.Errorf("got %d findings, expected 1", got)
	}
}

// TestImagesCheckWhitespaceAltIsEmpty tests that a whitespace-only alt
// counts as empty, not valid.
func TestImagesCheckWhitespaceAltIsEmpty(t *testing.T) {
	t.Parallel()

	doc := mustDocument(t, "https://example.com", `<html><body><img src="a.png" alt="   "></body></html>`)
	payload, _ := (&ImagesCheck{}).Run(doc)

	result := payload.(model.ImagesResult)
	if result.EmptyAlt != 1 || result.MissingAlt != 0 {
		t.Errorf("got payload %+v, expected empty_alt=1", result)
	}
}
