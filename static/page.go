// Package static holds the HTML around the chart served by the app.
package static

import (
	"html/template"
	"io"
)

// Form is the state of the parameter form; zero probe fields are left empty.
type Form struct {
	Width, Height int
	Sites         int
	Random        bool
	ProbeX        string
	ProbeY        string
}

var head = template.Must(template.New("head").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Триангуляция Делоне</title>
    <style>
        body {
            background-color: #1F1F1F;
            color: #d3d3d3;
            font-family: Consolas, monospace;
            overflow: hidden;
        }

        #container {
            display: flex;
            width: 100%;
            height: 100vh;
            box-sizing: border-box;
        }

        #left-container {
            width: 55%;
            padding: 10px;
            box-sizing: border-box;
        }

        #right-container {
            width: 45%;
            padding: 10px;
            box-sizing: border-box;
            border-left: 5px solid #757575;
            overflow: auto;
            background-color: #1e1e1e;
        }

        #logs {
            white-space: pre-wrap;
            word-wrap: break-word;
            font-family: Consolas, monospace;
        }

        input[type="number"],
        input[type="submit"] {
            background-color: #2b2b2b;
            color: #d3d3d3;
            border: 1px solid #444;
            padding: 5px;
            margin: 3px 0;
            border-radius: 4px;
            width: 90px;
        }

        input[type="submit"]:hover {
            background-color: #444;
            cursor: pointer;
        }

        fieldset {
            border: 1px solid #444;
            display: inline-block;
            margin-right: 10px;
        }

        ::-webkit-scrollbar { width: 8px; }
        ::-webkit-scrollbar-thumb { background-color: #444; border-radius: 10px; }
        ::-webkit-scrollbar-track { background-color: #2b2b2b; }
    </style>
</head>
<body>
    <div id="container">
        <div id="left-container">
            <h1>Делоне и Вороной</h1>
            <form id="diagram-form" method="POST">
                <fieldset>
                    <legend>Холст</legend>
                    <label for="width">W:</label>
                    <input type="number" id="width" name="width" value="{{.Width}}" min="100" max="5000">
                    <label for="height">H:</label>
                    <input type="number" id="height" name="height" value="{{.Height}}" min="100" max="5000">
                </fieldset>
                <fieldset>
                    <legend>Точки</legend>
                    <label for="stations">n:</label>
                    <input type="number" id="stations" name="stations" value="{{.Sites}}" min="1" max="500">
                    <label for="random">случайно</label>
                    <input type="checkbox" id="random" name="random" value="true"{{if .Random}} checked{{end}}>
                </fieldset>
                <fieldset>
                    <legend>Поиск грани</legend>
                    <label for="probe_x">x:</label>
                    <input type="number" step="any" id="probe_x" name="probe_x" value="{{.ProbeX}}">
                    <label for="probe_y">y:</label>
                    <input type="number" step="any" id="probe_y" name="probe_y" value="{{.ProbeY}}">
                </fieldset>
                <input type="submit" value="Построить">
            </form>
`))

// WriteHead writes everything up to the chart.
func WriteHead(w io.Writer, f Form) error {
	return head.Execute(w, f)
}

// LogsOpen sits between the chart and the log dump.
const LogsOpen = `
        </div>
        <div id="right-container">
            <h1>Логи</h1>
            <div id="logs">`

// Tail closes the page. The form is posted with fetch and the whole document
// is replaced by the response.
const Tail = `
            </div>
        </div>
    </div>

    <script>
        document.getElementById('diagram-form').addEventListener('submit', function (e) {
            e.preventDefault();
            fetch('/', {
                method: 'POST',
                body: new URLSearchParams(new FormData(this)).toString(),
                headers: { 'Content-Type': 'application/x-www-form-urlencoded' }
            })
            .then(response => {
                if (!response.ok) {
                    return response.text().then(text => { throw new Error(text); });
                }
                return response.text();
            })
            .then(html => {
                document.open();
                document.write(html);
                document.close();
            })
            .catch(error => {
                console.error('Ошибка:', error);
            });
        });
    </script>
</body>
</html>
`
