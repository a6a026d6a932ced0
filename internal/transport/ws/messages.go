package ws

// Application close codes при отказе в подключении.
const (
	CloseMissingToken = 4001 // токен не передан
	CloseInvalidToken = 4003 // токен битый/просрочен или пользователь не найден
)

// InboundFrame — входящий фрейм; распознаётся единственное поле message.
type InboundFrame struct {
	Message string `json:"message"`
}

// Event рассылается каждому соединению комнаты, включая остальные
// соединения отправителя.
type Event struct {
	Message        string `json:"message"`
	SenderID       int64  `json:"sender_id"`
	SenderUsername string `json:"sender_username"`
}
