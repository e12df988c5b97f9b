package usecase

// ExtractFlashcards exposes the extractor to the black-box tests.
var ExtractFlashcards = extractFlashcards
