package render

const (
	vertexShaderSource = `
		#version 410 core
		layout (location = 0) in vec3 position;
		layout (location = 1) in vec3 normal;
		layout (location = 2) in vec2 textureCoordinate;

		out vec3 vertexNormal;
		out vec3 vertexFragmentPos;
		out vec2 vertexTextureCoordinate;

		uniform mat4 model;
		uniform mat4 view;
		uniform mat4 projection;

		void main() {
			gl_Position = projection * view * model * vec4(position, 1.0);

			vertexFragmentPos = vec3(model * vec4(position, 1.0));
			vertexNormal = mat3(transpose(inverse(model))) * normal;
			vertexTextureCoordinate = textureCoordinate;
		}
	`

	fragmentShaderSource = `
		#version 410 core
		in vec3 vertexNormal;
		in vec3 vertexFragmentPos;
		in vec2 vertexTextureCoordinate;

		struct Light {
			vec3 ambient;
			vec3 diffuse;
			vec3 specular;
			float constant;
			float linear;
			float quadratic;
		};

		out vec4 fragmentColor;

		uniform vec3 lightPos;
		uniform vec3 viewPosition;
		uniform Light light;
		uniform sampler2D uTexture;
		uniform sampler2D dustTexture;

		void main() {
			vec3 texel = texture(uTexture, vertexTextureCoordinate).rgb;

			vec3 ambient = light.ambient * texel;

			vec3 norm = normalize(vertexNormal);
			vec3 lightDirection = normalize(lightPos - vertexFragmentPos);
			float impact = max(dot(norm, lightDirection), 0.0);
			vec3 diffuse = light.diffuse * impact * texel;

			float highlightSize = 32.0;
			vec3 viewDir = normalize(viewPosition - vertexFragmentPos);
			vec3 reflectDir = reflect(-lightDirection, norm);
			float specularComponent = pow(max(dot(viewDir, reflectDir), 0.0), highlightSize);
			vec3 specular = light.specular * specularComponent * texel;

			float distance = length(lightPos - vertexFragmentPos);
			float attenuation = 1.0 / (light.constant + light.linear * distance + light.quadratic * (distance * distance));

			fragmentColor = vec4((ambient + diffuse + specular) * attenuation, 1.0);
		}
	`
)
