package handler

// Export for testing
type TranslateResponse = translateResponse
type LanguageResponse = languageResponse
type StatusResponse = statusResponse
type TaskResponse = taskResponse
type TaskMutationResponse = taskMutationResponse
type BusinessCardResponse = businessCardResponse
type BusinessCardCreatedResponse = businessCardCreatedResponse

var NewTranslateHandlerHelper = NewTranslateHandler
var NewTaskHandlerHelper = NewTaskHandler
var NewBusinessCardHandlerHelper = NewBusinessCardHandler

var WriteServiceError = writeServiceError
var WriteError = writeError
